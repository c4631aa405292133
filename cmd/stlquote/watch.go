package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/philipparndt/stlquote/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	watchMaterial string
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-quote an STL file every time it changes",
	Long:  "Print a quote for the file, then print a fresh one whenever the file is saved again.",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchMaterial, "material", "m", "pla", "Material key (see 'stlquote materials')")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "Quiet period before re-reading a changed file")
}

// requoter prints a fresh quote for one file. Debounce timers fire on
// their own goroutines, so runs are serialized to keep output whole.
type requoter struct {
	mu       sync.Mutex
	out      io.Writer
	filename string
	material string
}

func (r *requoter) run() {
	r.mu.Lock()
	defer r.mu.Unlock()

	summary, err := summarizeFile(r.filename)
	if err != nil {
		logger.Error("failed to re-read model", "file", r.filename, "error", err)
		return
	}
	fmt.Fprintf(r.out, "\n[%s] %s\n", time.Now().Format(time.TimeOnly), r.filename)
	if err := printQuote(r.out, summary, r.material, false); err != nil {
		logger.Error("failed to print quote", "error", err)
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	filename := args[0]

	if _, err := cfg.Pricing.Material(watchMaterial); err != nil {
		return err
	}

	rq := &requoter{out: cmd.OutOrStdout(), filename: filename, material: watchMaterial}
	rq.run()

	fw, err := watcher.NewFileWatcher(watchDebounce, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Watch([]string{filename}, func(string) { rq.run() }); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fw.Start(ctx)
	logger.Info("watching for changes", "file", filename)
	<-ctx.Done()
	return nil
}
