package cmd

import (
	"pawn/worker"
	"pawn/worker/liquidator"

	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "pawn job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		system := provideSystem()
		accountStore := provideAccountStore()
		loanStore := provideLoanStore()

		blockService := provideBlockService(system)
		priceService := providePriceService()
		accountService := provideAccountService(system, accountStore, loanStore)

		jobs := []worker.IJob{
			liquidator.New(system, cfg.App.Location, loanStore, accountService, blockService, priceService),
		}

		g, ctx := errgroup.WithContext(ctx)
		for _, job := range jobs {
			job := job
			g.Go(func() error {
				if err := job.Start(); err != nil {
					return err
				}

				<-ctx.Done()
				return job.Stop()
			})
		}

		if err := g.Wait(); err != nil {
			log.WithError(err).Errorln("worker aborted")
		}
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
