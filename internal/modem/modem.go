package modem

import (
	"errors"
	"fmt"

	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/bits"
	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/carrier"
	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/crc"
	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/demod"
	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/framesync"
	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/iqbal"
	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/probe"
	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/shaper"
	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/timing"
)

// ErrPayloadSize reports a payload whose length disagrees with the
// configured frame layout.
var ErrPayloadSize = errors.New("modem: payload length mismatch")

// Modem runs the transmit and receive chains for one parameter set.
// Not safe for concurrent use of a single instance.
type Modem struct {
	params Params
	taps   []float64
	rec    probe.Recorder
}

// New validates p and precomputes the shaping filter.
func New(p Params) (*Modem, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	taps, err := shaper.Taps(p.TapCount(), p.RollOff, p.SymbolPeriod(), p.SampleRate)
	if err != nil {
		return nil, err
	}
	return &Modem{params: p, taps: taps, rec: probe.Discard{}}, nil
}

// Params returns the modem's configuration.
func (m *Modem) Params() Params { return m.params }

// Taps returns the shaping filter coefficients.
func (m *Modem) Taps() []float64 {
	out := make([]float64, len(m.taps))
	copy(out, m.taps)
	return out
}

// SetRecorder installs a sink for intermediate pipeline buffers.
// A nil recorder restores the discarding default.
func (m *Modem) SetRecorder(r probe.Recorder) {
	if r == nil {
		r = probe.Discard{}
	}
	m.rec = r
}

// Encode codes a payload, prepends the preamble, and shapes it onto a
// baseband waveform.
func (m *Modem) Encode(payload bits.Seq) ([]complex128, error) {
	if len(payload) != m.params.PayloadBits {
		return nil, fmt.Errorf("%w: got %d bits, configured for %d",
			ErrPayloadSize, len(payload), m.params.PayloadBits)
	}

	encoded, err := crc.Encode(payload, m.params.CRCKey)
	if err != nil {
		return nil, err
	}

	frame := make(bits.Seq, 0, m.params.FrameBits())
	frame = append(frame, m.params.Preamble...)
	frame = append(frame, encoded...)

	train, err := shaper.PulseTrain(frame, m.params.SPS)
	if err != nil {
		return nil, err
	}
	wave := shaper.Shape(train, m.taps)

	m.rec.RecordReal("tx_pulse_train", train)
	m.rec.RecordComplex("tx_waveform", wave)
	return wave, nil
}

// Result carries the receive-chain outcome. CRCValid false with a nil
// error means the frame was recovered but failed its integrity check.
type Result struct {
	// Codeword is the demodulated coded frame, preamble stripped.
	Codeword bits.Seq
	// Payload is the leading data portion of Codeword.
	Payload bits.Seq
	// CRCValid reports whether Codeword passed the CRC check.
	CRCValid bool
}

// Decode recovers a frame from a received baseband waveform: symbol
// timing, coarse frequency, Costas fine tracking, IQ imbalance, frame
// sync, then a hard decision per symbol and the CRC verdict.
func (m *Modem) Decode(waveform []complex128) (Result, error) {
	symbols, err := timing.Recover(waveform, m.params.SPS)
	if err != nil {
		return Result{}, err
	}
	m.rec.RecordComplex("rx_timing", symbols)

	coarse, estimate, err := carrier.CoarseCorrect(symbols, m.params.SampleRate)
	if err != nil {
		return Result{}, err
	}
	m.rec.RecordComplex("rx_coarse", coarse)
	m.rec.RecordReal("rx_coarse_estimate", []float64{estimate})

	tracked, freqLog, err := carrier.Track(coarse, m.params.SampleRate)
	if err != nil {
		return Result{}, err
	}
	m.rec.RecordComplex("rx_costas", tracked)
	m.rec.RecordReal("rx_costas_freq", freqLog)

	balanced, err := iqbal.Correct(tracked, m.params.IQMeanPeriod)
	if err != nil {
		return Result{}, err
	}
	m.rec.RecordComplex("rx_iqbal", balanced)

	frame, err := framesync.Sync(balanced, m.params.Preamble, m.params.EncodedBits(), m.params.SyncPeakRatio)
	if err != nil {
		return Result{}, err
	}
	m.rec.RecordComplex("rx_frame", frame)

	codeword, err := demod.Demodulate(frame, m.params.Scheme, 1)
	if err != nil {
		return Result{}, err
	}

	ok, err := crc.Check(codeword, m.params.CRCKey)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Codeword: codeword,
		Payload:  codeword[:m.params.PayloadBits],
		CRCValid: ok,
	}, nil
}
