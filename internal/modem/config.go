package modem

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/bits"
)

// fileConfig mirrors Params for YAML decoding. Pointer fields
// distinguish "absent" from zero so omitted keys keep their defaults.
type fileConfig struct {
	PayloadBits   *int     `yaml:"payload_bits"`
	SampleRate    *float64 `yaml:"sample_rate"`
	PulseShape    *string  `yaml:"pulse_shape"`
	RollOff       *float64 `yaml:"roll_off"`
	FilterSpan    *int     `yaml:"filter_span"`
	Scheme        *string  `yaml:"scheme"`
	SPS           *int     `yaml:"samples_per_symbol"`
	Preamble      []int    `yaml:"preamble"`
	CRCKey        []int    `yaml:"crc_key"`
	IQMeanPeriod  *int     `yaml:"iq_mean_period"`
	SyncPeakRatio *float64 `yaml:"sync_peak_ratio"`
}

// Load reads a YAML parameter file, applies it on top of Default, and
// validates the result.
func Load(path string) (Params, error) {
	p := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("modem: read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return Params{}, fmt.Errorf("modem: parse config: %w", err)
	}

	if fc.PayloadBits != nil {
		p.PayloadBits = *fc.PayloadBits
	}
	if fc.SampleRate != nil {
		p.SampleRate = *fc.SampleRate
	}
	if fc.PulseShape != nil {
		p.PulseShape = *fc.PulseShape
	}
	if fc.RollOff != nil {
		p.RollOff = *fc.RollOff
	}
	if fc.FilterSpan != nil {
		p.FilterSpan = *fc.FilterSpan
	}
	if fc.Scheme != nil {
		p.Scheme = *fc.Scheme
	}
	if fc.SPS != nil {
		p.SPS = *fc.SPS
	}
	if fc.Preamble != nil {
		p.Preamble = toBits(fc.Preamble)
	}
	if fc.CRCKey != nil {
		p.CRCKey = toBits(fc.CRCKey)
	}
	if fc.IQMeanPeriod != nil {
		p.IQMeanPeriod = *fc.IQMeanPeriod
	}
	if fc.SyncPeakRatio != nil {
		p.SyncPeakRatio = *fc.SyncPeakRatio
	}

	if err := p.Validate(); err != nil {
		return Params{}, fmt.Errorf("modem: config %s: %w", path, err)
	}
	return p, nil
}

func toBits(v []int) bits.Seq {
	out := make(bits.Seq, len(v))
	for i, b := range v {
		if b != 0 {
			out[i] = 1
		}
	}
	return out
}
