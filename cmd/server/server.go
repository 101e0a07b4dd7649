// Command server runs a depthbook engine behind a TCP listener so the
// order book can be driven from separate client processes (see
// cmd/client). The engine's matching/fee/persistence surface is out of
// scope (SPEC_FULL.md §1); this binary only forwards wire commands to it.
package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"depthbook/internal/common"
	"depthbook/internal/engine"
	"depthbook/internal/transport"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	addr := flag.String("address", "0.0.0.0", "listen address")
	port := flag.Int("port", 9001, "listen port")
	symbolID := flag.Int64("symbol-id", 1, "initial symbol id to register")
	symbolName := flag.String("symbol-name", "DOGE_USDT", "initial symbol name to register")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	eng := engine.New()
	if !eng.AddSymbol(common.SymbolID(*symbolID), *symbolName) {
		log.Fatal().Int64("symbol_id", *symbolID).Msg("failed to register initial symbol")
	}

	srv := transport.New(*addr, *port, eng, log.With().Str("engine_id", eng.ID()).Logger())
	if err := srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}
