// Command monetary converts host chain coins between two configured
// currencies.
//
// Usage:
//
//	monetary [-inverse] [-env file] coin...
//
// Coins are given in the compact notation, such as 1000000ueur.
// Currencies, the rate and the rounding mode are read from MONETARY_*
// environment variables, see package config.
// Every conversion is written to stdout as a JSON object.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/govalues/decimal"

	"github.com/govalues/monetary"
	"github.com/govalues/monetary/internal/config"
)

// source and target are the currencies of the configured pair.
// They are distinct types, so coins of one cannot be passed as the other.
type (
	source string
	target string
)

func (s source) Denom() string { return string(s) }
func (t target) Denom() string { return string(t) }

type conversion struct {
	ID          string            `json:"id"`
	Input       monetary.WireCoin `json:"input"`
	Output      monetary.WireCoin `json:"output"`
	Rate        string            `json:"rate"`
	InputHuman  string            `json:"inputHuman,omitempty"`
	OutputHuman string            `json:"outputHuman,omitempty"`
}

func main() {
	inverse := flag.Bool("inverse", false, "convert from the target currency back to the source currency")
	envFile := flag.String("env", "", "load configuration from this file in addition to .env, taking precedence over it")
	flag.Parse()

	files := []string{".env"}
	if *envFile != "" {
		files = []string{*envFile, ".env"}
	}
	cfg, err := config.LoadConfig(files...)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	if err := run(logger, cfg, flag.Args(), *inverse, os.Stdout); err != nil {
		logger.Error("Conversion failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, cfg *config.Config, args []string, inverse bool, w io.Writer) error {
	d, err := decimal.Parse(cfg.Rate)
	if err != nil {
		return fmt.Errorf("parsing rate: %w", err)
	}
	ceil := cfg.Rounding == "ceil"
	src, tgt := source(cfg.FromDenom), target(cfg.ToDenom)

	if cfg.Precise() {
		from := monetary.NewPrecise(src, uint8(cfg.FromDecimals))
		to := monetary.NewPrecise(tgt, uint8(cfg.ToDecimals))
		r, err := monetary.NewPreciseExchRate(from, to, d)
		if err != nil {
			return err
		}
		logger.Debug("Exchange rate constructed", slog.String("rate", r.String()), slog.Bool("precise", true))
		return convertAll(logger, r, args, ceil, inverse, w)
	}

	logger.Warn("Decimal places are not configured, the rate is applied to minor units",
		slog.Int("from_decimals", cfg.FromDecimals),
		slog.Int("to_decimals", cfg.ToDecimals),
	)
	r, err := monetary.NewImpreciseExchRate(monetary.NewImprecise(src), monetary.NewImprecise(tgt), d)
	if err != nil {
		return err
	}
	return convertAll(logger, r, args, ceil, inverse, w)
}

func convertAll[F, T monetary.Precision](logger *slog.Logger, r monetary.ExchangeRate[F, T], args []string, ceil, inverse bool, w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, arg := range args {
		res, err := convert(r, arg, ceil, inverse)
		if err != nil {
			return err
		}
		logger.Info("Coin converted",
			slog.String("id", res.ID),
			slog.String("input", res.Input.String()),
			slog.String("output", res.Output.String()),
		)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding conversion: %w", err)
		}
	}
	return nil
}

// convert converts a coin of the from currency or, if inverse is true,
// a coin of the to currency back to the from currency.
// The inverse conversion divides by the rate exactly.
func convert[F, T monetary.Precision](r monetary.ExchangeRate[F, T], arg string, ceil, inverse bool) (conversion, error) {
	wc, err := monetary.ParseWireCoin(arg)
	if err != nil {
		return conversion{}, err
	}
	if inverse {
		in, err := monetary.ParseCoin(wc, r.To())
		if err != nil {
			return conversion{}, err
		}
		var out monetary.Coin[F]
		if ceil {
			out, err = r.ApplyInvCeil(in)
		} else {
			out, err = r.ApplyInvFloor(in)
		}
		if err != nil {
			return conversion{}, err
		}
		return newConversion(in, out, r.Inv().Rate()), nil
	}

	in, err := monetary.ParseCoin(wc, r.From())
	if err != nil {
		return conversion{}, err
	}
	var out monetary.Coin[T]
	if ceil {
		out, err = r.ApplyCeil(in)
	} else {
		out, err = r.ApplyFloor(in)
	}
	if err != nil {
		return conversion{}, err
	}
	return newConversion(in, out, r.Rate()), nil
}

func newConversion[P, Q monetary.Precision](in monetary.Coin[P], out monetary.Coin[Q], rate fmt.Stringer) conversion {
	res := conversion{
		ID:     uuid.NewString(),
		Input:  in.ToWire(),
		Output: out.ToWire(),
		Rate:   rate.String(),
	}
	if h, err := monetary.ToHuman(in); err == nil {
		res.InputHuman = h.String()
	}
	if h, err := monetary.ToHuman(out); err == nil {
		res.OutputHuman = h.String()
	}
	return res
}
