// Command loopback runs the full modulate/demodulate chain over a
// simulated channel and scores the received bits against the sent ones.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/bits"
	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/channel"
	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/modem"
	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/probe"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", "", "YAML parameter file (defaults used when empty)")
		payload    = pflag.StringP("payload", "p", "Hello World!", "Payload text to send")
		impair     = pflag.Bool("impair", false, "Pass the waveform through noise, delay and frequency offset")
		seed       = pflag.Int64("seed", 1, "Channel noise seed")
		exportDir  = pflag.StringP("export", "e", "", "Directory to dump intermediate arrays into")
		verbose    = pflag.BoolP("verbose", "v", false, "Debug logging")
	)
	pflag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := run(*configPath, *payload, *impair, *seed, *exportDir); err != nil {
		log.Error("loopback failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath, payload string, impair bool, seed int64, exportDir string) error {
	params := modem.Default()
	if configPath != "" {
		var err error
		params, err = modem.Load(configPath)
		if err != nil {
			return err
		}
		log.Info("loaded parameters", "path", configPath)
	}

	tx := bits.FromText(payload)
	params.PayloadBits = len(tx)
	if err := params.Validate(); err != nil {
		return err
	}

	m, err := modem.New(params)
	if err != nil {
		return err
	}

	hub := probe.NewHub()
	if exportDir != "" {
		m.SetRecorder(hub)
	}

	log.Info("transmitting",
		"payload", payload,
		"bits", len(tx),
		"frame", params.FrameBits(),
		"sps", params.SPS,
		"scheme", params.Scheme)

	wave, err := m.Encode(tx)
	if err != nil {
		return err
	}
	log.Debug("waveform shaped", "samples", len(wave))

	if impair {
		rng := rand.New(rand.NewSource(seed))
		wave, err = channel.AWGN(wave, rng, 1, 0.1, 10)
		if err != nil {
			return err
		}
		wave, err = channel.FractionalDelay(wave, 0.4, 21)
		if err != nil {
			return err
		}
		wave = channel.FrequencyShift(wave, 61250, params.SampleRate)
		log.Info("channel impairments applied",
			"seed", seed, "delay", 0.4, "offset_hz", 61250)
	}

	result, err := m.Decode(wave)
	if err != nil {
		return err
	}

	if exportDir != "" {
		if err := hub.Export(exportDir); err != nil {
			return err
		}
		log.Info("arrays exported", "dir", exportDir, "stages", len(hub.Stages()))
	}

	printScore(tx, result.Payload)
	log.Info("crc", "valid", result.CRCValid)

	if text, err := result.Payload.Text(); err == nil {
		fmt.Printf("received: %q\n", text)
	}
	return nil
}

// printScore lays the sent and received bits out side by side and
// reports how many match.
func printScore(tx, rx bits.Seq) {
	const perRow = 32
	for off := 0; off < len(tx); off += perRow {
		end := off + perRow
		if end > len(tx) {
			end = len(tx)
		}
		fmt.Printf("tx %4d  %s\n", off, tx[off:end])
		fmt.Printf("rx %4d  %s\n\n", off, rx[off:end])
	}
	errors := bits.Diff(tx, rx)
	fmt.Printf("score: %d/%d bits correct\n", len(tx)-errors, len(tx))
}
