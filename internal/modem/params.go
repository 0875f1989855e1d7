// Package modem ties the physical-layer blocks into a transmit/receive
// pair and owns the link parameters they share.
package modem

import (
	"errors"
	"fmt"

	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/bits"
)

var (
	// ErrPayloadBits reports a non-positive payload length.
	ErrPayloadBits = errors.New("modem: payload length must be positive")
	// ErrSampleRate reports a non-positive sample rate.
	ErrSampleRate = errors.New("modem: sample rate must be positive")
	// ErrPulseShape reports an unsupported pulse shape.
	ErrPulseShape = errors.New("modem: unknown pulse shape")
	// ErrRollOff reports a roll-off outside [0, 1].
	ErrRollOff = errors.New("modem: roll-off must be in [0, 1]")
	// ErrFilterSpan reports a non-positive filter span.
	ErrFilterSpan = errors.New("modem: filter span must be positive")
	// ErrScheme reports an unsupported modulation scheme.
	ErrScheme = errors.New("modem: unknown scheme")
	// ErrSampleFactor reports a samples-per-symbol below 2.
	ErrSampleFactor = errors.New("modem: samples per symbol must be at least 2")
	// ErrPreamble reports an empty preamble.
	ErrPreamble = errors.New("modem: preamble must not be empty")
	// ErrCRCKey reports an unusable CRC key.
	ErrCRCKey = errors.New("modem: crc key needs at least two bits and a leading one")
	// ErrMeanPeriod reports a non-positive IQ averaging period.
	ErrMeanPeriod = errors.New("modem: iq mean period must be positive")
)

// DefaultPreamble returns the 60-bit synchronisation pattern used by the
// link. The sequence has low off-peak autocorrelation (NASA report
// 19800017860).
func DefaultPreamble() bits.Seq {
	return bits.Seq{
		0, 1, 0, 0, 0, 0, 1, 1, 0, 0, 0, 1, 0, 1, 0,
		0, 1, 1, 1, 1, 0, 1, 0, 0, 0, 1, 1, 1, 0, 0,
		1, 0, 0, 1, 0, 1, 1, 0, 1, 1, 1, 0, 1, 1, 0,
		0, 1, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1, 1, 1, 0,
	}
}

// DefaultCRCKey returns the generator 0x98F (Koopman notation), an
// 11-bit CRC with good Hamming distance at these frame lengths.
func DefaultCRCKey() bits.Seq {
	return bits.Seq{1, 0, 0, 1, 1, 0, 0, 0, 0, 1, 1, 1}
}

// Params collects every knob shared by the transmit and receive chains.
type Params struct {
	// PayloadBits is the payload length per frame, before coding.
	PayloadBits int
	// SampleRate in Hz.
	SampleRate float64
	// PulseShape names the shaping filter; only "rrc" is supported.
	PulseShape string
	// RollOff is the excess-bandwidth factor of the shaping filter.
	RollOff float64
	// FilterSpan is the shaping filter length in symbols.
	FilterSpan int
	// Scheme is the constellation, "BPSK" or "OOK".
	Scheme string
	// SPS is the number of samples per symbol.
	SPS int
	// Preamble is prepended to every coded frame.
	Preamble bits.Seq
	// CRCKey is the CRC generator polynomial, MSB first.
	CRCKey bits.Seq
	// IQMeanPeriod is the window half-width, in samples, of the running
	// means used by the IQ imbalance estimator.
	IQMeanPeriod int
	// SyncPeakRatio gates frame sync on correlation peak strength.
	// Zero accepts the global maximum unconditionally.
	SyncPeakRatio float64
}

// Default returns the link parameters used by the flight configuration.
func Default() Params {
	return Params{
		PayloadBits:   256,
		SampleRate:    2.45e9,
		PulseShape:    "rrc",
		RollOff:       0.5,
		FilterSpan:    8,
		Scheme:        "BPSK",
		SPS:           8,
		Preamble:      DefaultPreamble(),
		CRCKey:        DefaultCRCKey(),
		IQMeanPeriod:  100,
		SyncPeakRatio: 0,
	}
}

// Validate reports the first invalid parameter.
func (p Params) Validate() error {
	if p.PayloadBits <= 0 {
		return ErrPayloadBits
	}
	if p.SampleRate <= 0 {
		return ErrSampleRate
	}
	if p.PulseShape != "rrc" {
		return fmt.Errorf("%w %q", ErrPulseShape, p.PulseShape)
	}
	if p.RollOff < 0 || p.RollOff > 1 {
		return ErrRollOff
	}
	if p.FilterSpan <= 0 {
		return ErrFilterSpan
	}
	if p.Scheme != "BPSK" && p.Scheme != "OOK" {
		return fmt.Errorf("%w %q", ErrScheme, p.Scheme)
	}
	if p.SPS < 2 {
		return ErrSampleFactor
	}
	if len(p.Preamble) == 0 {
		return ErrPreamble
	}
	if len(p.CRCKey) < 2 || p.CRCKey[0] != 1 {
		return ErrCRCKey
	}
	if p.IQMeanPeriod <= 0 {
		return ErrMeanPeriod
	}
	return nil
}

// EncodedBits is the coded frame length: payload plus CRC remainder.
func (p Params) EncodedBits() int {
	return p.PayloadBits + len(p.CRCKey) - 1
}

// FrameBits is the on-air frame length including the preamble.
func (p Params) FrameBits() int {
	return len(p.Preamble) + p.EncodedBits()
}

// SymbolPeriod is the symbol duration in seconds.
func (p Params) SymbolPeriod() float64 {
	return 1 / (p.SampleRate / float64(p.SPS))
}

// TapCount is the shaping filter length in samples.
func (p Params) TapCount() int {
	return p.FilterSpan * p.SPS
}
