package output

import (
	"strings"
	"testing"
)

type recordingSynth struct {
	supported bool
	voices    []string
	calls     []string
	spoken    []Utterance
}

func (r *recordingSynth) Supported() bool  { return r.supported }
func (r *recordingSynth) Voices() []string { return r.voices }

func (r *recordingSynth) Speak(u Utterance) {
	r.calls = append(r.calls, "speak")
	r.spoken = append(r.spoken, u)
}

func (r *recordingSynth) Pause()  { r.calls = append(r.calls, "pause") }
func (r *recordingSynth) Resume() { r.calls = append(r.calls, "resume") }
func (r *recordingSynth) Cancel() { r.calls = append(r.calls, "cancel") }

func newTestAdapter(synth *recordingSynth) *Adapter {
	return NewAdapter(synth, Options{Rate: 0.9, Pitch: 1.0, Volume: 0.8, LongTextThreshold: 500})
}

func TestSpeakCancelsBeforeSpeaking(t *testing.T) {
	synth := &recordingSynth{supported: true}
	a := newTestAdapter(synth)

	a.Speak("first")
	a.Speak("second")

	want := []string{"cancel", "speak", "cancel", "speak"}
	if strings.Join(synth.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("expected call order %v, got %v", want, synth.calls)
	}
	if a.State() != Speaking {
		t.Fatalf("expected Speaking, got %v", a.State())
	}
}

func TestSpeakAppliesOptions(t *testing.T) {
	synth := &recordingSynth{supported: true}
	a := newTestAdapter(synth)

	a.Speak("hello")

	u := synth.spoken[0]
	if u.Rate != 0.9 || u.Pitch != 1.0 || u.Volume != 0.8 {
		t.Fatalf("unexpected utterance parameters %+v", u)
	}
}

func TestSpeakPrefersFemaleVoice(t *testing.T) {
	synth := &recordingSynth{supported: true, voices: []string{"Ravi", "Google हिन्दी Female", "Default"}}
	a := newTestAdapter(synth)

	a.Speak("hello")

	if synth.spoken[0].Voice != "Google हिन्दी Female" {
		t.Fatalf("expected female voice, got %q", synth.spoken[0].Voice)
	}
}

func TestSpeakIgnoresBlankAndUnsupported(t *testing.T) {
	unsupported := &recordingSynth{supported: false}
	a := newTestAdapter(unsupported)
	a.Speak("hello")
	if len(unsupported.calls) != 0 {
		t.Fatal("unsupported synthesizer must never be called")
	}

	synth := &recordingSynth{supported: true}
	a = newTestAdapter(synth)
	a.Speak("   ")
	if len(synth.calls) != 0 {
		t.Fatal("blank text must not be spoken")
	}
}

func TestPauseOnlyWhileSpeaking(t *testing.T) {
	synth := &recordingSynth{supported: true}
	a := newTestAdapter(synth)

	a.Pause()
	if len(synth.calls) != 0 {
		t.Fatal("pause while idle must be a no-op")
	}

	a.Speak("hello")
	a.Pause()
	if a.State() != Paused {
		t.Fatalf("expected Paused, got %v", a.State())
	}
	if synth.calls[len(synth.calls)-1] != "pause" {
		t.Fatalf("expected pause call, got %v", synth.calls)
	}
}

func TestResumeFromPaused(t *testing.T) {
	synth := &recordingSynth{supported: true}
	a := newTestAdapter(synth)

	a.Speak("hello")
	a.Pause()
	a.Resume()

	if a.State() != Speaking {
		t.Fatalf("expected Speaking, got %v", a.State())
	}
	if synth.calls[len(synth.calls)-1] != "resume" {
		t.Fatalf("expected resume call, got %v", synth.calls)
	}
}

func TestResumeFromIdleRestartsLastText(t *testing.T) {
	synth := &recordingSynth{supported: true}
	a := newTestAdapter(synth)

	a.Speak("the full announcement")
	a.Stop()
	a.Resume()

	if len(synth.spoken) != 2 {
		t.Fatalf("expected restart speak, got %d utterances", len(synth.spoken))
	}
	if synth.spoken[1].Text != "the full announcement" {
		t.Fatalf("restart must replay the last text, got %q", synth.spoken[1].Text)
	}
}

func TestResumeFromIdleWithNothingCached(t *testing.T) {
	synth := &recordingSynth{supported: true}
	a := newTestAdapter(synth)

	a.Resume()
	if len(synth.calls) != 0 {
		t.Fatal("resume with nothing cached must be a no-op")
	}
}

func TestToggleDisabledStopsPlayback(t *testing.T) {
	synth := &recordingSynth{supported: true}
	a := newTestAdapter(synth)

	a.Speak("hello")
	if enabled := a.ToggleEnabled(); enabled {
		t.Fatal("expected toggle to disable")
	}
	if a.State() != Idle {
		t.Fatalf("disabling must stop playback, state %v", a.State())
	}
	if synth.calls[len(synth.calls)-1] != "cancel" {
		t.Fatalf("expected cancel on disable, got %v", synth.calls)
	}

	// While disabled nothing plays.
	a.Speak("ignored")
	if len(synth.spoken) != 1 {
		t.Fatal("disabled adapter must not speak")
	}

	if enabled := a.ToggleEnabled(); !enabled {
		t.Fatal("expected toggle to re-enable")
	}
}

func TestPlaybackFinishedReturnsToIdle(t *testing.T) {
	synth := &recordingSynth{supported: true}
	a := newTestAdapter(synth)

	a.Speak("hello")
	a.PlaybackFinished()
	if a.State() != Idle {
		t.Fatalf("expected Idle, got %v", a.State())
	}
}

func TestNarrateShortTextSpeaksDirectly(t *testing.T) {
	synth := &recordingSynth{supported: true}
	a := newTestAdapter(synth)

	a.Narrate("short answer")
	if len(synth.spoken) != 1 {
		t.Fatal("short narration must speak without confirmation")
	}
}

func TestNarrateLongTextAsksFirst(t *testing.T) {
	synth := &recordingSynth{supported: true}
	a := newTestAdapter(synth)

	long := strings.Repeat("x", 501)
	var asked string
	var proceedFn func(bool)
	a.SetLongTextDecider(func(text string, proceed func(accept bool)) {
		asked = text
		proceedFn = proceed
	})

	a.Narrate(long)
	if asked != long {
		t.Fatal("decider must receive the narration text")
	}
	if len(synth.spoken) != 0 {
		t.Fatal("narration must wait for the decision")
	}

	proceedFn(true)
	if len(synth.spoken) != 1 {
		t.Fatal("accepted narration must speak")
	}
}

func TestNarrateLongTextDeclined(t *testing.T) {
	synth := &recordingSynth{supported: true}
	a := newTestAdapter(synth)

	a.SetLongTextDecider(func(text string, proceed func(accept bool)) {
		proceed(false)
	})

	a.Narrate(strings.Repeat("x", 501))
	if len(synth.spoken) != 0 {
		t.Fatal("declined narration must not speak")
	}
}

func TestNarrateLongTextWithoutDeciderSkips(t *testing.T) {
	synth := &recordingSynth{supported: true}
	a := newTestAdapter(synth)

	a.Narrate(strings.Repeat("x", 501))
	if len(synth.spoken) != 0 {
		t.Fatal("long narration without a decider must be skipped")
	}
}

func TestDirectiveSynthesizerBroadcast(t *testing.T) {
	d := NewDirectiveSynthesizer()
	ch, cancel := d.Subscribe()
	defer cancel()

	d.Speak(Utterance{Text: "hello"})

	directive := <-ch
	if directive.Type != "speak" || directive.Utterance == nil || directive.Utterance.Text != "hello" {
		t.Fatalf("unexpected directive %+v", directive)
	}

	d.AskConfirm("abc", 600)
	confirm := <-ch
	if confirm.Type != "confirm" || confirm.ConfirmID != "abc" || confirm.Length != 600 {
		t.Fatalf("unexpected confirm directive %+v", confirm)
	}
}

func TestDirectiveSynthesizerUnsubscribe(t *testing.T) {
	d := NewDirectiveSynthesizer()
	ch, cancel := d.Subscribe()
	cancel()

	d.Cancel()
	select {
	case directive := <-ch:
		t.Fatalf("unsubscribed listener received %+v", directive)
	default:
	}
}
