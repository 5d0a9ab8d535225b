package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileOverridesOnlyGivenKeys(t *testing.T) {
	prevC, prevScroll, prevBP, prevNet := *C, Scroll, Breakpoints, Network
	t.Cleanup(func() {
		*C, Scroll, Breakpoints, Network = prevC, prevScroll, prevBP, prevNet
	})

	path := filepath.Join(t.TempDir(), "kiosk.yaml")
	data := []byte(`
window:
  width: 1920
scroll:
  distance: 5000
network:
  remote_url: ws://controller.local:7373
breakpoints:
  mobile:
    load_batch_size: 8
    extensions: [png]
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	require.NoError(t, LoadFile(path))

	assert.Equal(t, 1920, C.Width)
	assert.Equal(t, prevC.Height, C.Height)
	assert.Equal(t, 5000.0, Scroll.Distance)
	assert.Equal(t, prevScroll.WheelStep, Scroll.WheelStep)
	assert.Equal(t, "ws://controller.local:7373", Network.RemoteURL)
	assert.Equal(t, 8, Breakpoints.Mobile.LoadBatchSize)
	assert.Equal(t, []string{"png"}, Breakpoints.Mobile.Extensions)
	assert.Equal(t, prevBP.Mobile.TotalFrames, Breakpoints.Mobile.TotalFrames)
	assert.Equal(t, prevBP.Desktop, Breakpoints.Desktop)
}

func TestLoadFileMissing(t *testing.T) {
	err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLangToggle(t *testing.T) {
	assert.Equal(t, LangAR, LangENG.Toggle())
	assert.Equal(t, LangENG, LangAR.Toggle())
	assert.True(t, LangAR.RTL())
	assert.Len(t, TextFor(LangAR).Messages, len(TextFor(LangENG).Messages))
}

func TestLoadFileReplacesPartnerTimeline(t *testing.T) {
	prev := PartnerTimeline
	t.Cleanup(func() { PartnerTimeline = prev })

	path := filepath.Join(t.TempDir(), "kiosk.yaml")
	data := []byte(`
partner_timeline:
  name: partner
  end_frame: 1
  items:
    - name: stage
      phases:
        - name: swap
          weight: 1
          props:
            - {prop: yellow, from: 0, to: 1, ease: inOutCubic}
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	require.NoError(t, LoadFile(path))

	require.Len(t, PartnerTimeline.Items, 1)
	assert.Equal(t, "stage", PartnerTimeline.Items[0].Name)
	assert.Equal(t, PropYellow, PartnerTimeline.Items[0].Phases[0].Props[0].Prop)
	assert.Equal(t, "inOutCubic", PartnerTimeline.Items[0].Phases[0].Props[0].Ease)
}

func TestPartnerCopyInBothLanguages(t *testing.T) {
	eng, ar := TextFor(LangENG).Partner, TextFor(LangAR).Partner
	assert.Len(t, ar.Features, len(eng.Features))
	assert.Len(t, ar.Cards, len(eng.Cards))
	assert.Contains(t, eng.Title, "\n", "the title splits into lines")
	assert.Len(t, TextFor(LangAR).NavLinks, len(TextFor(LangENG).NavLinks))
}
