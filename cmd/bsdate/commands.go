package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tartampluch/go-bikram-sambat/internal/app"
	"github.com/tartampluch/go-bikram-sambat/internal/bikram"
	"github.com/tartampluch/go-bikram-sambat/internal/calendar"
	"github.com/tartampluch/go-bikram-sambat/internal/config"
	"github.com/tartampluch/go-bikram-sambat/internal/engine"
	"github.com/tartampluch/go-bikram-sambat/internal/locale"
	"github.com/tartampluch/go-bikram-sambat/internal/server"
)

// cli holds the command tree and the state shared by its commands.
type cli struct {
	root *cobra.Command

	configPath string
	debug      bool
	lang       string

	now       func() time.Time
	keyring   app.Keyring
	logCloser io.Closer
}

func newCLI() *cli {
	c := &cli{now: time.Now, keyring: app.OSKeyring{}}

	c.root = &cobra.Command{
		Use:           config.AppName,
		Short:         config.CmdRootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			c.logCloser = setupLogging(c.debug, cmd.Name() == config.CmdServeUse)
		},
	}

	flags := c.root.PersistentFlags()
	flags.StringVar(&c.configPath, config.FlagConfig, "", config.FlagDescConfig)
	flags.BoolVar(&c.debug, config.FlagDebug, false, config.FlagDescDebug)
	flags.StringVar(&c.lang, config.FlagLang, "", config.FlagDescLang)

	c.root.AddCommand(
		c.newConvertCmd(),
		c.newTodayCmd(),
		c.newAddCmd(),
		c.newFormatCmd(),
		c.newMonthCmd(),
		c.newInfoCmd(),
		c.newServeCmd(),
		c.newCredentialsCmd(),
		c.newVersionCmd(),
	)
	return c
}

func (c *cli) close() {
	if c.logCloser != nil {
		_ = c.logCloser.Close() // Best effort close
	}
}

func (c *cli) language() locale.Lang {
	return locale.Resolve(c.lang)
}

// printDate writes d as YYYY-MM-DD, or through template when one is given.
func (c *cli) printDate(w io.Writer, d bikram.Date, template string) {
	if template == "" {
		fmt.Fprintln(w, d.String())
		return
	}
	fmt.Fprintln(w, d.FormatLang(template, c.language()))
}

func parseBS(s string) (bikram.Date, error) {
	d, err := bikram.ParseStrict(s)
	if err != nil {
		return bikram.Date{}, err
	}
	slog.Debug(config.MsgConverted,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyInput, s,
		config.LogKeyResult, d.String())
	return d, nil
}

func (c *cli) newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.CmdConvertUse,
		Short: config.CmdConvertShort,
	}
	cmd.AddCommand(c.newToBSCmd(), c.newToADCmd())
	return cmd
}

func (c *cli) newToBSCmd() *cobra.Command {
	var template string
	cmd := &cobra.Command{
		Use:   config.CmdToBSUse,
		Short: config.CmdToBSShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := bikram.ToBikramSambat(bikram.ADText(args[0]))
			if !d.IsValid() {
				if err := d.Err(); err != nil {
					return err
				}
				return fmt.Errorf("%s: %q", config.ErrADParse, args[0])
			}
			c.printDate(cmd.OutOrStdout(), d, template)
			return nil
		},
	}
	cmd.Flags().StringVarP(&template, config.FlagFormat, "f", "", config.FlagDescFormat)
	return cmd
}

func (c *cli) newToADCmd() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdToADUse,
		Short: config.CmdToADShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseBS(args[0])
			if err != nil {
				return err
			}
			t, err := d.ToGregorian()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Format(config.DateFormatFullDash))
			return nil
		},
	}
}

func (c *cli) newTodayCmd() *cobra.Command {
	var template string
	cmd := &cobra.Command{
		Use:   config.CmdTodayUse,
		Short: config.CmdTodayShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := bikram.FromTime(c.now())
			if !d.IsValid() {
				return d.Err()
			}
			c.printDate(cmd.OutOrStdout(), d, template)
			return nil
		},
	}
	cmd.Flags().StringVarP(&template, config.FlagFormat, "f", "", config.FlagDescFormat)
	return cmd
}

// newAddCmd applies years, then months, then days.
func (c *cli) newAddCmd() *cobra.Command {
	var years, months, days int
	var template string
	cmd := &cobra.Command{
		Use:   config.CmdAddUse,
		Short: config.CmdAddShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseBS(args[0])
			if err != nil {
				return err
			}
			d.AddYears(years).AddMonths(months).AddDays(days)
			if !d.IsValid() {
				return d.Err()
			}
			c.printDate(cmd.OutOrStdout(), d, template)
			return nil
		},
	}
	cmd.Flags().IntVar(&years, config.FlagYears, 0, config.FlagDescYears)
	cmd.Flags().IntVar(&months, config.FlagMonths, 0, config.FlagDescMonths)
	cmd.Flags().IntVar(&days, config.FlagDays, 0, config.FlagDescDays)
	cmd.Flags().StringVarP(&template, config.FlagFormat, "f", "", config.FlagDescFormat)
	return cmd
}

func (c *cli) newFormatCmd() *cobra.Command {
	var template string
	cmd := &cobra.Command{
		Use:   config.CmdFormatUse,
		Short: config.CmdFormatShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseBS(args[0])
			if err != nil {
				return err
			}
			c.printDate(cmd.OutOrStdout(), d, template)
			return nil
		},
	}
	cmd.Flags().StringVarP(&template, config.FlagFormat, "f", config.BSFormatLong, config.FlagDescFormat)
	return cmd
}

func (c *cli) newMonthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdMonthUse,
		Short: config.CmdMonthShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%s: %q", config.ErrNumberArg, args[0])
			}
			month, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%s: %q", config.ErrNumberArg, args[1])
			}

			days, err := bikram.MonthDays(year, month)
			if err != nil {
				return err
			}

			lang := c.language()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, config.FormatMonthHeader,
				locale.MonthAt(month).Name(lang),
				locale.Digits(strconv.Itoa(year), lang),
				len(days))
			for _, d := range days {
				wd, _ := d.DayOfWeek()
				ad, _ := d.ToGregorianDate()
				fmt.Fprintf(w, config.FormatMonthLine, d.String(), ad.String(), locale.WeekdayAt(wd).Name(lang))
			}
			return nil
		},
	}
}

func (c *cli) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdInfoUse,
		Short: config.CmdInfoShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			first, last := calendar.Bounds()
			fmt.Fprintf(cmd.OutOrStdout(), config.FormatInfoOutput,
				calendar.FirstYear, calendar.LastYear, first, last)
		},
	}
}

// newServeCmd runs the calendar server and the sync worker until the
// process receives SIGINT or SIGTERM.
func (c *cli) newServeCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   config.CmdServeUse,
		Short: config.CmdServeShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.LoadSettings(c.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed(config.FlagPort) {
				settings.Server.Port = port
			}
			if c.lang != "" {
				settings.Language = string(c.language())
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			logStartupInfo()
			slog.Info(config.MsgSettingsFile,
				config.LogKeyComponent, config.CompSettings,
				config.LogKeyFile, c.configPath,
				config.LogKeyLang, settings.Language,
				config.LogKeyPort, settings.Server.Port,
				config.LogKeyMode, settings.Source.Mode)

			srv := server.NewCalendarServer(server.OptionsFrom(settings.Server))
			a := app.New(cmd.Context(), settings, srv, engine.NewHTTPFetcher())
			a.Keyring = c.keyring
			return a.Run()
		},
	}
	cmd.Flags().IntVar(&port, config.FlagPort, config.DefaultPort, config.FlagDescPort)
	return cmd
}

func (c *cli) newCredentialsCmd() *cobra.Command {
	var user, password string

	set := &cobra.Command{
		Use:   config.CmdCredsSetUse,
		Short: config.CmdCredsSetShort,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if user == "" {
				return errors.New(config.ErrUserRequired)
			}
			return app.StoreCredentials(c.keyring, user, password)
		},
	}
	set.Flags().StringVar(&user, config.FlagUser, "", config.FlagDescUser)
	set.Flags().StringVar(&password, config.FlagPassword, "", config.FlagDescPassword)

	del := &cobra.Command{
		Use:   config.CmdCredsDeleteUse,
		Short: config.CmdCredsDeleteShort,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if user == "" {
				return errors.New(config.ErrUserRequired)
			}
			return app.DeleteCredentials(c.keyring, user)
		},
	}
	del.Flags().StringVar(&user, config.FlagUser, "", config.FlagDescUser)

	cmd := &cobra.Command{
		Use:   config.CmdCredsUse,
		Short: config.CmdCredsShort,
	}
	cmd.AddCommand(set, del)
	return cmd
}

func (c *cli) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdVersionUse,
		Short: config.CmdVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}
