// Softap brings the device up as a standalone WiFi access point serving a
// diagnostic web page.
//
// The boot sequence is fully determined by compiled-in defaults and the
// state of the persistent partition; there are no flags. On a host the radio
// is simulated in-process. SOFTAP_LOG_LEVEL selects the log level and
// SOFTAP_HTTP_ADDR overrides the web server's listen address.
//
// Usage:
//
//	softap
//	softap version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/softap/internal/ap"
	"github.com/muurk/softap/internal/boot"
	"github.com/muurk/softap/internal/discovery"
	"github.com/muurk/softap/internal/httpd"
	"github.com/muurk/softap/internal/logging"
	"github.com/muurk/softap/internal/nvs"
	"github.com/muurk/softap/internal/ui"
	"github.com/muurk/softap/internal/version"
	"github.com/muurk/softap/internal/wifi/sim"
)

// HTTPAddrEnvVar overrides the web server listen address on host builds.
const HTTPAddrEnvVar = "SOFTAP_HTTP_ADDR"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "softap",
	Short: "ESP32 soft access point firmware",
	Long: `Brings the device up as a standalone WiFi access point and serves a
static diagnostic page at http://192.168.4.1 to connected stations.

The process idles until it is interrupted.`,
	Version:       version.Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDevice,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(versionCmd)
}

func runDevice(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(""); err != nil {
		return err
	}
	defer logging.Sync()

	partitionPath, err := nvs.DefaultPartitionPath()
	if err != nil {
		return err
	}

	stack := sim.New()
	defer stack.Close()

	httpConfig := httpd.DefaultConfig()
	if addr := os.Getenv(HTTPAddrEnvVar); addr != "" {
		httpConfig.Addr = addr
	}

	orchestrator := &boot.Orchestrator{
		Partition: nvs.NewFilePartition(partitionPath),
		Stack:     stack,
		Config:    ap.DefaultConfig(),
		HTTP:      httpConfig,
		Advertise: func(port int) (boot.Advertisement, error) {
			adv, err := discovery.Advertise(discovery.DefaultInstance, port)
			if err != nil {
				return nil, err
			}
			return adv, nil
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := orchestrator.Run(ctx)
	if err != nil {
		logging.Error("Boot aborted", zap.Error(err))
		return err
	}

	if ui.IsTerminal() {
		fmt.Println(ui.RenderSummary(res.Summary(), ui.GetTerminalWidth()))
	}

	res.Idle(ctx)
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("softap %s\n", version.Full())
	},
}
