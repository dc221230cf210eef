package cmd

import (
	"context"
	"fmt"
	"time"

	"smartmoney/internal"
	"smartmoney/internal/app"
	"smartmoney/internal/logger"

	"github.com/spf13/cobra"
)

var (
	flagPort           int
	flagStrategy       string
	flagLookbackDays   int
	flagSkipCollection bool
	flagTopN           int
)

var rootCmd = &cobra.Command{
	Use:   "smartmoney",
	Short: "Signal confluence scoring for tracked smart money activity",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		apiHandler, err := InitializeDependencies()
		if err != nil {
			return err
		}
		defer CloseDependencies(apiHandler)

		return apiHandler.StartApi(flagPort)
	},
}

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Pull signals from every feed and store them",
	RunE: func(cmd *cobra.Command, args []string) error {
		apiHandler, err := InitializeDependencies()
		if err != nil {
			return err
		}
		defer CloseDependencies(apiHandler)

		ctx := context.WithValue(context.Background(), logger.ContextKey, logger.New())
		_, err = apiHandler.ScoringPassApp.RunScoringPass(ctx, app.RunScoringPassInput{
			StrategyName: flagStrategy,
			LookbackDays: flagLookbackDays,
		})
		return err
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Re-score stored signals without collecting",
	RunE: func(cmd *cobra.Command, args []string) error {
		apiHandler, err := InitializeDependencies()
		if err != nil {
			return err
		}
		defer CloseDependencies(apiHandler)

		ctx := context.WithValue(context.Background(), logger.ContextKey, logger.New())
		result, err := apiHandler.ScoringPassApp.RunScoringPass(ctx, app.RunScoringPassInput{
			StrategyName:   flagStrategy,
			LookbackDays:   flagLookbackDays,
			SkipCollection: true,
		})
		if err != nil {
			return err
		}

		top := result.Tickers
		if len(top) > flagTopN {
			top = top[:flagTopN]
		}
		internal.Pprint(top)
		fmt.Printf("scored %d tickers as of %s\n", len(result.Tickers), result.Now.Format(time.RFC3339))
		return nil
	},
}

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Run a scoring pass and email the digest to subscribers",
	RunE: func(cmd *cobra.Command, args []string) error {
		apiHandler, err := InitializeDependencies()
		if err != nil {
			return err
		}
		defer CloseDependencies(apiHandler)

		ctx := context.WithValue(context.Background(), logger.ContextKey, logger.New())
		return apiHandler.DigestApp.SendDailyDigest(ctx, app.SendDailyDigestInput{
			TopN:           flagTopN,
			StrategyName:   flagStrategy,
			LookbackDays:   flagLookbackDays,
			SkipCollection: flagSkipCollection,
		})
	},
}

func init() {
	serveCmd.Flags().IntVar(&flagPort, "port", 3009, "port to listen on")

	for _, c := range []*cobra.Command{collectCmd, scoreCmd, digestCmd} {
		c.Flags().StringVar(&flagStrategy, "strategy", "heuristic", "scoring strategy: heuristic or formula")
		c.Flags().IntVar(&flagLookbackDays, "lookback-days", 45, "signal window in days")
	}
	scoreCmd.Flags().IntVar(&flagTopN, "top", 25, "how many ranked tickers to print")
	digestCmd.Flags().IntVar(&flagTopN, "top", 10, "how many ranked tickers to include")
	digestCmd.Flags().BoolVar(&flagSkipCollection, "skip-collection", false, "score stored signals without collecting")

	rootCmd.AddCommand(serveCmd, collectCmd, scoreCmd, digestCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
