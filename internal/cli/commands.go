package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-jdate"
)

func newFormatCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format PATTERN",
		Short: "Render an instant with single character specifiers",
		Long:  `Render an instant with single character specifiers, e.g. "Y/m/d H:i". A backslash escapes the next character.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			epoch, err := a.epochFlag(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.formatter.Format(args[0], epoch))
			return nil
		},
	}
	cmd.Flags().String("epoch", "", "unix seconds to render (default now)")
	return cmd
}

func newStrftimeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strftime PATTERN",
		Short: "Render an instant with percent prefixed specifiers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			epoch, err := a.epochFlag(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.formatter.Strftime(args[0], epoch))
			return nil
		},
	}
	cmd.Flags().String("epoch", "", "unix seconds to render (default now)")
	return cmd
}

func newConvertCommand(a *app) *cobra.Command {
	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert dates between the Gregorian and Jalali calendars",
	}

	convertCmd.AddCommand(&cobra.Command{
		Use:   "tojalali YEAR MONTH DAY",
		Short: "Convert a Gregorian date to Jalali",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			y, m, d, err := parseTriple(args)
			if err != nil {
				return err
			}
			jy, jm, jd := jdate.ToJalali(y, m, d)
			a.println(cmd, jdate.Date{Year: jy, Month: jm, Day: jd}.String())
			return nil
		},
	})

	convertCmd.AddCommand(&cobra.Command{
		Use:   "togregorian YEAR MONTH DAY",
		Short: "Convert a Jalali date to Gregorian",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			y, m, d, err := parseTriple(args)
			if err != nil {
				return err
			}
			gy, gm, gd := jdate.ToGregorian(y, m, d)
			a.println(cmd, jdate.Date{Year: gy, Month: gm, Day: gd}.String())
			return nil
		},
	})

	return convertCmd
}

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate YEAR MONTH DAY",
		Short: "Check that a Jalali date exists",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			y, m, d, err := parseTriple(args)
			if err != nil {
				return err
			}
			if err := jdate.ValidateJalaliDate(m, d, y); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}

func newMktimeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mktime [HOUR [MINUTE [SECOND [MONTH [DAY [YEAR]]]]]]",
		Short: "Build an epoch from Jalali fields, defaulting the rest to now",
		Args:  cobra.MaximumNArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseInts(args)
			if err != nil {
				return err
			}

			strict, _ := cmd.Flags().GetBool("strict")
			var epoch int64
			if strict {
				epoch, err = a.formatter.MakeTimeStrict(fields...)
			} else {
				epoch, err = a.formatter.MakeTime(fields...)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), epoch)
			return nil
		},
	}
	cmd.Flags().Bool("strict", false, "reject dates that do not exist")
	return cmd
}

func newGetdateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "getdate",
		Short: "Decompose an instant into its Jalali fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			epoch, err := a.epochFlag(cmd)
			if err != nil {
				return err
			}
			info, err := a.formatter.GetDate(epoch)
			if err != nil {
				return err
			}

			output, _ := cmd.Flags().GetString("output")
			switch output {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				defer enc.Close()
				return enc.Encode(info)
			default:
				return fmt.Errorf("unknown output format %q", output)
			}
		},
	}
	cmd.Flags().String("epoch", "", "unix seconds to decompose (default now)")
	cmd.Flags().StringP("output", "o", "yaml", "output format: yaml or json")
	return cmd
}

func newSpellCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "spell KIND VALUE",
		Short: "Spell a calendar value in Persian words",
		Long: "Spell a calendar value in Persian words. KIND is one of weekday-short, weekday-full, " +
			"month-short, month-full, month-alternate, season, zodiac-year, ordinal-day or year.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := jdate.ParseWordKind(args[0])
			if err != nil {
				return err
			}
			value, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}
			word, err := a.formatter.Spell(kind, value)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), word)
			return nil
		},
	}
}

func newDigitsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digits TEXT",
		Short: "Transliterate digits between Latin and Persian glyphs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, _ := cmd.Flags().GetString("to")
			script, err := jdate.ParseScript(to)
			if err != nil {
				return err
			}
			dir := jdate.ToPersian
			if script == jdate.ScriptLatin {
				dir = jdate.ToLatin
			}
			decimal := []rune(a.cfg.Decimal)[0]
			fmt.Fprintln(cmd.OutOrStdout(), jdate.Transliterate(args[0], dir, decimal))
			return nil
		},
	}
	cmd.Flags().String("to", "persian", "target script: persian or latin")
	return cmd
}

func (a *app) epochFlag(cmd *cobra.Command) (int64, error) {
	raw, _ := cmd.Flags().GetString("epoch")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return a.formatter.Now().Unix(), nil
	}
	epoch, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid epoch %q: %w", raw, err)
	}
	return epoch, nil
}

func (a *app) println(cmd *cobra.Command, text string) {
	fmt.Fprintln(cmd.OutOrStdout(), a.formatter.Localize(text))
}

func parseTriple(args []string) (int, int, int, error) {
	values, err := parseInts(args)
	if err != nil {
		return 0, 0, 0, err
	}
	return values[0], values[1], values[2], nil
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", arg, err)
		}
		values = append(values, v)
	}
	return values, nil
}
