// Package query evaluates expressions against a built configuration.
//
// Expressions use the expr language (https://expr-lang.org) over an
// environment mirroring the document export schema, so a query like
//
//	filter(goals, .progress < 100) | map(.name)
//
// works the way the JSON output reads.
package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/fundl/model"
)

// Sentinel errors wrapping expression failures.
var (
	ErrCompile = errors.New("failed to compile query")
	ErrRun     = errors.New("failed to run query")
)

// Env builds the expression environment from a configuration. Entities
// appear as maps keyed like the JSON document export, plus a few
// aggregate helpers.
func Env(cfg *model.Configuration) map[string]any {
	env := map[string]any{
		"name":        cfg.Name,
		"description": cfg.Description,
		"currency":    cfg.Currency.String(),
		"min_amount":  amountEnv(cfg.MinAmount),
		"max_amount":  amountEnv(cfg.MaxAmount),
	}

	beneficiaries := make([]map[string]any, 0, len(cfg.Beneficiaries))
	for _, ben := range cfg.Beneficiaries {
		beneficiaries = append(beneficiaries, map[string]any{
			"name":        ben.Name,
			"email":       ben.Email,
			"github":      ben.GitHub,
			"website":     ben.Website,
			"description": ben.Description,
		})
	}

	sources := make([]map[string]any, 0, len(cfg.Sources))
	for _, src := range cfg.Sources {
		config := make(map[string]string, len(src.Config))
		for _, pair := range src.Config {
			config[pair.Key] = pair.Value
		}

		sources = append(sources, map[string]any{
			"platform":   src.Platform.String(),
			"identifier": src.Identifier,
			"type":       src.Type.String(),
			"active":     src.Active,
			"url":        src.URL,
			"config":     config,
		})
	}

	tiers := make([]map[string]any, 0, len(cfg.Tiers))
	for _, tier := range cfg.Tiers {
		tiers = append(tiers, map[string]any{
			"name":         tier.Name,
			"amount":       amountEnv(&tier.Amount),
			"description":  tier.Description,
			"max_sponsors": tier.MaxSponsors,
			"unbounded":    tier.Unbounded(),
			"benefits":     tier.Benefits,
		})
	}

	goals := make([]map[string]any, 0, len(cfg.Goals))
	for _, goal := range cfg.Goals {
		goals = append(goals, map[string]any{
			"name":        goal.Name,
			"target":      amountEnv(&goal.Target),
			"current":     amountEnv(&goal.Current),
			"progress":    goal.Progress(),
			"reached":     goal.Reached(),
			"deadline":    goal.Deadline,
			"description": goal.Description,
		})
	}

	env["beneficiaries"] = beneficiaries
	env["sources"] = sources
	env["tiers"] = tiers
	env["goals"] = goals

	return env
}

// Eval compiles and runs one expression against the configuration.
func Eval(cfg *model.Configuration, source string) (any, error) {
	env := Env(cfg)

	program, err := Compile(source, env)
	if err != nil {
		return nil, err
	}

	result, err := vm.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRun, err)
	}

	return result, nil
}

// Compile compiles an expression against the given environment without
// running it, so callers can reuse the program.
func Compile(source string, env map[string]any) (*vm.Program, error) {
	program, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}

	return program, nil
}

// FormatResult renders a query result for terminal output: scalars print
// bare, composites print as indented JSON.
func FormatResult(result any) string {
	switch val := result.(type) {
	case nil:
		return "null"

	case bool:
		return strconv.FormatBool(val)

	case int:
		return strconv.Itoa(val)

	case int64:
		return strconv.FormatInt(val, 10)

	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)

	case string:
		return val

	default:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Sprintf("%v", result)
		}

		return string(data)
	}
}

func amountEnv(a *model.Amount) map[string]any {
	if a == nil {
		return nil
	}

	return map[string]any{
		"value":    a.Value,
		"currency": a.Currency.String(),
	}
}
