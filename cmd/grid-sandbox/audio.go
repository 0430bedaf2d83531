package main

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
)

const (
	sampleRate = beep.SampleRate(44100)

	placeHz     = 880
	placeLength = 50 * time.Millisecond
	errorHz     = 220
	errorLength = 120 * time.Millisecond
)

// ticker plays short cues for placement and blocked moves
type ticker struct {
	ready  bool
	volume float64 // linear, 0 mutes
}

// newTicker initializes the speaker; failures leave the ticker silent
func newTicker(enabled bool, volume float64) *ticker {
	t := &ticker{volume: volume}
	if !enabled {
		return t
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logrus.WithError(err).Warn("audio initialization failed")
		return t
	}
	t.ready = true
	return t
}

// tone builds a sine cue of fixed length at linear volume vol
func tone(freq int, length time.Duration, vol float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return nil, err
	}
	s := beep.Take(sampleRate.N(length), sine)
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}, nil
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}, nil
}

func (t *ticker) play(freq int, length time.Duration) {
	if !t.ready {
		return
	}
	s, err := tone(freq, length, t.volume)
	if err != nil {
		logrus.WithError(err).Debug("tone generation failed")
		return
	}
	speaker.Play(s)
}

func (t *ticker) place()   { t.play(placeHz, placeLength) }
func (t *ticker) blocked() { t.play(errorHz, errorLength) }

func (t *ticker) close() {
	if t.ready {
		speaker.Close()
	}
}
