package publication

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diegorodrguez7/carta-digital-qr/internal/model"
)

func TestStateOf(t *testing.T) {
	link := "https://qarta.example/menu/abc"

	tests := []struct {
		name       string
		restaurant *model.Restaurant
		expected   State
	}{
		{"never published", &model.Restaurant{}, StateDraft},
		{"published", &model.Restaurant{Published: true, MenuLink: &link}, StatePublished},
		{"unpublished with link retained", &model.Restaurant{Published: false, MenuLink: &link}, StatePaused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StateOf(tt.restaurant))
		})
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		from     State
		event    Event
		expected State
		ok       bool
	}{
		{"publish a draft", StateDraft, EventPublish, StatePublished, true},
		{"re-publish a paused menu", StatePaused, EventPublish, StatePublished, true},
		{"publish is idempotent", StatePublished, EventPublish, StatePublished, true},
		{"unpublish a published menu", StatePublished, EventUnpublish, StatePaused, true},
		{"unpublish an already-paused menu", StatePaused, EventUnpublish, StatePaused, true},
		{"unpublish a draft is invalid", StateDraft, EventUnpublish, "", false},
		{"delete from draft", StateDraft, EventDeleteMenu, StateDraft, true},
		{"delete from published", StatePublished, EventDeleteMenu, StateDraft, true},
		{"delete from paused", StatePaused, EventDeleteMenu, StateDraft, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			to, ok := Apply(tt.from, tt.event)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, to)
			}
		})
	}
}

func TestAllCoversEveryEventFromEveryReachableState(t *testing.T) {
	// Delete must be allowed from every state.
	for _, from := range []State{StateDraft, StatePublished, StatePaused} {
		_, ok := Apply(from, EventDeleteMenu)
		assert.True(t, ok, "delete from %s", from)
	}
	assert.NotEmpty(t, All())
}
