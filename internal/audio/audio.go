package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// tone generates a sine wave tone at the given frequency for the given duration
func tone(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := 2 * math.Pi * freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := math.Sin(phase) * 0.3 // 0.3 volume
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			// Square wave: positive or negative based on phase
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// PlayJump plays a short rising blip for a jump
func PlayJump() {
	if !initialized {
		return
	}
	go func() {
		speaker.Play(squareWave(520, 40*time.Millisecond))
		time.Sleep(40 * time.Millisecond)
		speaker.Play(squareWave(780, 60*time.Millisecond))
	}()
}

// PlayBounce plays the sound for the ball bouncing off a surface
func PlayBounce() {
	if !initialized {
		return
	}
	// Medium-pitched short beep
	speaker.Play(squareWave(440, 30*time.Millisecond))
}

// PlaySplash plays the sound for the ball entering water
func PlaySplash() {
	if !initialized {
		return
	}
	// Falling sine sweep
	go func() {
		speaker.Play(tone(300, 60*time.Millisecond))
		time.Sleep(60 * time.Millisecond)
		speaker.Play(tone(180, 90*time.Millisecond))
	}()
}

// PlayGoal plays an ascending jingle for completing a level
func PlayGoal() {
	if !initialized {
		return
	}
	go func() {
		speaker.Play(squareWave(440, 100*time.Millisecond))
		time.Sleep(100 * time.Millisecond)
		speaker.Play(squareWave(550, 100*time.Millisecond))
		time.Sleep(100 * time.Millisecond)
		speaker.Play(squareWave(660, 150*time.Millisecond))
	}()
}

// PlayDeath plays a descending jingle for losing a life
func PlayDeath() {
	if !initialized {
		return
	}
	go func() {
		speaker.Play(squareWave(660, 100*time.Millisecond))
		time.Sleep(100 * time.Millisecond)
		speaker.Play(squareWave(440, 100*time.Millisecond))
		time.Sleep(100 * time.Millisecond)
		speaker.Play(squareWave(330, 150*time.Millisecond))
	}()
}
