package systems

import (
	"image"
	"testing"

	cfg "github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/sequencer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func partnerStage(t *testing.T, track *sequencer.Track, local float64) sequencer.ItemState {
	t.Helper()
	st, ok := sequencer.Find(track.EvaluateLocal(local), "stage")
	require.True(t, ok)
	return st
}

func TestPartnerTimelineOrder(t *testing.T) {
	track, err := PartnerTrack()
	require.NoError(t, err)

	states := track.EvaluateLocal(0)
	title, _ := sequencer.Find(states, "title")
	para, _ := sequencer.Find(states, "para")
	assert.Equal(t, 1.0, title.Value(cfg.PropOpacity, 0))
	assert.Equal(t, 1.0, title.Value(cfg.PropScale, 0))
	assert.Equal(t, 0.0, para.Value(cfg.PropOpacity, 1))

	stage := partnerStage(t, track, 0)
	assert.Equal(t, 0.0, stage.Value(cfg.PropOpacity, 1))
	assert.Equal(t, 0.24, stage.Value(cfg.PropHeight, 0))
	assert.Equal(t, 0.0, stage.Value(cfg.PropYellow, 1))

	// Title 2.4, paragraph 1.6 and stage 12.6 weights: the yellow layer is
	// gone by 8/16.6 and the dark one starts at 8.5/16.6.
	mid := partnerStage(t, track, (4+3.25)/16.6)
	assert.InDelta(t, 0.5, mid.Value(cfg.PropYellow, 0), 1e-6)
	assert.Greater(t, mid.Value(cfg.PropImage1, 0), 0.5, "image clips in alongside the yellow layer")
	assert.Zero(t, mid.Value(cfg.PropDark, -1))

	swapped := partnerStage(t, track, 0.5)
	assert.Equal(t, 1.0, swapped.Value(cfg.PropYellow, 0))
	assert.Equal(t, 1.0, swapped.Value(cfg.PropImage1, 0))
	assert.Zero(t, swapped.Value(cfg.PropDark, -1))

	end := partnerStage(t, track, 1)
	for _, prop := range []string{cfg.PropDark, cfg.PropImage2, cfg.PropBottom, cfg.PropImage3, cfg.PropSmarter} {
		assert.Equal(t, 1.0, end.Value(prop, 0), prop)
	}
	assert.Equal(t, 0.8, end.Value(cfg.PropHeight, 0))
	title, _ = sequencer.Find(track.EvaluateLocal(1), "title")
	assert.Equal(t, 0.0, title.Value(cfg.PropOpacity, 1))
}

func TestStageRect(t *testing.T) {
	assert.Equal(t, image.Rect(100, 150, 900, 950), StageRect(1000, 1000, 0.8, 0, 1))
	assert.Equal(t, image.Rect(100, 750, 900, 990), StageRect(1000, 1000, 0.24, 40, 1))

	scaled := StageRect(1000, 1000, 0.5, 0, 0.5)
	assert.Equal(t, 400, scaled.Dx())
	assert.Equal(t, image.Pt(500, 700), image.Pt((scaled.Min.X+scaled.Max.X)/2, (scaled.Min.Y+scaled.Max.Y)/2))
}

func TestGridCells(t *testing.T) {
	cells := GridCells(image.Rect(0, 0, 430, 210), 7, 4, 10)
	require.Len(t, cells, 7)
	assert.Equal(t, image.Rect(0, 0, 100, 100), cells[0])
	assert.Equal(t, image.Rect(330, 0, 430, 100), cells[3])
	assert.Equal(t, image.Rect(0, 110, 100, 210), cells[4])
	assert.Nil(t, GridCells(image.Rect(0, 0, 10, 10), 0, 4, 0))

	assert.Equal(t, 4, GridColumns(1200, 4))
	assert.Equal(t, 3, GridColumns(1200, 3))
	assert.Equal(t, 2, GridColumns(700, 4))
	assert.Equal(t, 1, GridColumns(300, 4))
}

func TestWrapText(t *testing.T) {
	face := basicfont.Face7x13 // 7px per glyph

	assert.Equal(t, []string{"aaa bbb", "ccc"}, WrapText("aaa bbb ccc", face, 50))
	assert.Equal(t, []string{"aaa bbb ccc"}, WrapText("aaa bbb ccc", face, 77))
	assert.Equal(t, []string{"a", "verylongword", "b"}, WrapText("a verylongword b", face, 30))
	assert.Equal(t, []string{"Partner", "With Us"}, WrapText("Partner\nWith Us", face, 500))
}
