package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/pageza/chefmaster/backend/internal/generator"
	"github.com/pageza/chefmaster/backend/internal/kb"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func catalogFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "catalog",
		Aliases: []string{"c"},
		Usage:   "Path to a YAML cuisine catalog (defaults to the built-in cuisines)",
	}
}

func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "chef",
		Usage:  "Generate a recipe from the cuisine knowledge base",
		Writer: out,
		Description: `Generate a recipe conditioned on optional facets:
  - Cuisine (one of the catalog's cuisines, or "Any")
  - Meal type
  - Dietary restriction
  - Difficulty tier

The same seed and facets always produce the same recipe.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "cuisine",
				Usage: "Cuisine id, or Any to pick one at random",
			},
			&cli.StringFlag{
				Name:  "meal-type",
				Usage: fmt.Sprintf("Meal type (supported values: %v)", generator.MealTypes()),
			},
			&cli.StringFlag{
				Name:  "dietary",
				Usage: fmt.Sprintf("Dietary restriction (supported values: %v)", generator.Dietaries()),
			},
			&cli.StringFlag{
				Name:  "difficulty",
				Usage: fmt.Sprintf("Difficulty tier (supported values: %v)", generator.Difficulties()),
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "Random seed; a random one is chosen and printed when omitted",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"o"},
				Value:   formatText,
				Usage:   "Output format (text, json, yaml)",
			},
			catalogFlag(),
		},
		Commands: []*cli.Command{
			cuisinesCmd(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := strings.ToLower(cmd.String("format"))
			if format != formatText && format != formatJSON && format != formatYAML {
				return fmt.Errorf("unknown output format: %q", cmd.String("format"))
			}

			base, err := loadBase(cmd.String("catalog"))
			if err != nil {
				return err
			}

			facets, err := generator.ParseFacets(
				cmd.String("cuisine"), cmd.String("meal-type"), cmd.String("dietary"), cmd.String("difficulty"),
			)
			if err != nil {
				return err
			}

			seed := rand.Int63()
			if cmd.IsSet("seed") {
				seed = cmd.Int64("seed")
			}

			recipe, err := generator.Generate(base, facets, generator.NewSource(seed))
			if err != nil {
				return fmt.Errorf("error generating recipe: %w", err)
			}

			return render(cmd.Root().Writer, format, seed, recipe)
		},
	}
}

func cuisinesCmd() *cli.Command {
	return &cli.Command{
		Name:  "cuisines",
		Usage: "List the cuisines in the catalog",
		Flags: []cli.Flag{catalogFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			base, err := loadBase(cmd.String("catalog"))
			if err != nil {
				return err
			}
			for _, id := range base.CuisineIDs() {
				fmt.Fprintln(cmd.Root().Writer, id)
			}
			return nil
		},
	}
}

func loadBase(path string) (*kb.Base, error) {
	if path == "" {
		return kb.Default(), nil
	}
	return kb.LoadFile(path)
}

type seededRecipe struct {
	Seed             int64 `json:"seed" yaml:"seed"`
	generator.Recipe `yaml:",inline"`
}

func render(w io.Writer, format string, seed int64, r *generator.Recipe) error {
	out := seededRecipe{Seed: seed, Recipe: *r}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.Name)
	fmt.Fprintf(&b, "Cuisine: %s | Meal: %s | Dietary: %s | Difficulty: %s | Cook time: %s\n\n",
		r.Cuisine, r.MealType, r.Dietary, r.Difficulty, r.CookTime)
	b.WriteString("Ingredients:\n")
	for _, item := range r.Ingredients {
		fmt.Fprintf(&b, "  - %s\n", item)
	}
	b.WriteString("\nInstructions:\n")
	for i, step := range r.Instructions {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}
	fmt.Fprintf(&b, "\nImage: %s\nSeed: %d\n", r.ImageURL, seed)

	_, err := io.WriteString(w, b.String())
	return err
}
