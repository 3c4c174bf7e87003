package audio

import "math"

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Sound identifies a procedural effect.
type Sound int

const (
	SoundShot Sound = iota
	SoundPop
	SoundSpawn
	SoundRejected
	SoundAttractOn
	SoundAttractOff
	SoundPause
	SoundResume
)

func (s Sound) String() string {
	switch s {
	case SoundShot:
		return "shot"
	case SoundPop:
		return "pop"
	case SoundSpawn:
		return "spawn"
	case SoundRejected:
		return "rejected"
	case SoundAttractOn:
		return "attract_on"
	case SoundAttractOff:
		return "attract_off"
	case SoundPause:
		return "pause"
	case SoundResume:
		return "resume"
	}
	return "unknown"
}

// Generate renders a mono effect in [-1,1] at SampleRate. size only
// affects SoundPop, where it is the popped ball's radius.
func Generate(s Sound, size float64) []float64 {
	switch s {
	case SoundShot:
		return genShot()
	case SoundPop:
		return genPop(size)
	case SoundSpawn:
		return genSpawn()
	case SoundRejected:
		return genRejected()
	case SoundAttractOn:
		return genSweep(420, 880)
	case SoundAttractOff:
		return genSweep(880, 420)
	case SoundPause:
		return genTwoNote(659.25, 440)
	case SoundResume:
		return genTwoNote(440, 659.25)
	}
	return nil
}

// softSat applies gentle tanh-like saturation without hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func samples(sec float64) []float64 { return make([]float64, int(sec*SampleRate)) }

// genShot: short noise crack over a falling sine blip.
func genShot() []float64 {
	buf := samples(0.07)
	n := len(buf)
	seed := uint64(77777)
	for i := range buf {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		crack := 0.0
		if p < 0.08 {
			crack = lcg(&seed) * (1 - p/0.08) * 0.5
		}
		freq := 1800 * math.Pow(0.25, p)
		blip := math.Sin(2*math.Pi*freq*t) * math.Exp(-p*9) * 0.45
		buf[i] = softSat(crack + blip)
	}
	return buf
}

// genPop: bubbly FM pop with a wet noise tail. Bigger balls pop lower
// and ring a little longer.
func genPop(radius float64) []float64 {
	r := min(max(radius, 5), 40)
	buf := samples(0.08 + r*0.004)
	n := len(buf)
	seed := uint64(11111)
	lp := 0.0
	base := 1400 - r*28
	for i := range buf {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.45, 0.0, 0.1)
		freq := base * (1 + 0.6*p)
		s := fm(t, freq, 2.0, 3.0*env) * env * 0.45
		lp = lp*0.8 + lcg(&seed)*0.2
		s += lp * math.Exp(-p*10) * 0.35
		buf[i] = softSat(s)
	}
	return buf
}

// genSpawn: snappy ascending bell.
func genSpawn() []float64 {
	buf := samples(0.09)
	n := len(buf)
	for i := range buf {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 480 + 720*p
		s := fm(t, freq, 2.0, 3.5*env) * env * 0.5
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.06
		buf[i] = softSat(s)
	}
	return buf
}

// genRejected: low square-ish buzz.
func genRejected() []float64 {
	buf := samples(0.15)
	n := len(buf)
	for i := range buf {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.2, 0.7, 0.3)
		s := math.Tanh(math.Sin(2*math.Pi*120*t)*3.4) * env * 0.3
		buf[i] = softSat(s)
	}
	return buf
}

// genSweep: click with a pitch glide between from and to.
func genSweep(from, to float64) []float64 {
	buf := samples(0.12)
	n := len(buf)
	phase := 0.0
	for i := range buf {
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.2, 0.2)
		freq := from + (to-from)*p
		phase += 2 * math.Pi * freq / SampleRate
		buf[i] = softSat(math.Sin(phase) * env * 0.4)
	}
	return buf
}

// genTwoNote: two staggered FM notes.
func genTwoNote(a, b float64) []float64 {
	buf := samples(0.22)
	n := len(buf)
	half := n / 2
	for i := range buf {
		t := float64(i) / SampleRate
		freq, start, end := a, 0, half
		if i >= half {
			freq, start, end = b, half, n
		}
		np := float64(i-start) / float64(end-start)
		env := adsr(np, 0.01, 0.5, 0.2, 0.3)
		buf[i] = softSat(fm(t, freq, 1.0, 0.8*env) * env * 0.35)
	}
	return buf
}
