package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/chainkeeper/internal/config"
	"github.com/goodnatureofminers/chainkeeper/internal/journal"
	"github.com/goodnatureofminers/chainkeeper/internal/journal/clickhouse"
	"github.com/goodnatureofminers/chainkeeper/internal/ledger/bitcoin"
	"github.com/goodnatureofminers/chainkeeper/internal/ledger/follower"
	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
	"github.com/goodnatureofminers/chainkeeper/internal/ledger/service"
	"github.com/goodnatureofminers/chainkeeper/internal/metrics"
	"github.com/goodnatureofminers/chainkeeper/internal/transport"
)

type options struct {
	DataDir       string `long:"data-dir" env:"CHAINKEEPER_DATA_DIR" default:"data" description:"Ledger storage directory"`
	Network       string `long:"network" env:"CHAINKEEPER_NETWORK" default:"mainnet" description:"Bitcoin network (mainnet, testnet, regtest, signet)"`
	ConfigFile    string `long:"config" env:"CHAINKEEPER_CONFIG" description:"TOML file with storage, orphan pool, follower and journal tuning"`
	RPCHost       string `long:"rpc-host" env:"CHAINKEEPER_RPC_HOST" description:"bitcoind RPC host:port to follow, empty disables the follower"`
	RPCUser       string `long:"rpc-user" env:"CHAINKEEPER_RPC_USER" description:"bitcoind RPC user"`
	RPCPassword   string `long:"rpc-password" env:"CHAINKEEPER_RPC_PASSWORD" description:"bitcoind RPC password"`
	RPCDisableTLS bool   `long:"rpc-disable-tls" env:"CHAINKEEPER_RPC_DISABLE_TLS" description:"Talk to bitcoind over plain HTTP"`
	ZMQAddr       string `long:"zmq-addr" env:"CHAINKEEPER_ZMQ_ADDR" description:"bitcoind zmqpubhashblock endpoint, empty polls only"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"CHAINKEEPER_CLICKHOUSE_DSN" description:"ClickHouse DSN for the reorganization journal, empty disables it"`
	GRPCAddr      string `long:"grpc-addr" env:"CHAINKEEPER_GRPC_ADDR" default:":8000" description:"grpc health server addr"`
	HTTPAddr      string `long:"http-addr" env:"CHAINKEEPER_HTTP_ADDR" default:":8001" description:"HTTP query and metrics server addr"`
}

func main() {
	opts := options{}
	if _, err := flags.Parse(&opts); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		log.Fatalf("failed to parse flags: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, logger); err != nil {
		logger.Fatal("chainkeeperd failed", zap.Error(err))
	}
}

func run(ctx context.Context, opts options, logger *zap.Logger) error {
	network := model.Network(opts.Network)
	params, err := network.ChainParams()
	if err != nil {
		return err
	}
	settings, err := config.Load(opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	engine := service.New(
		settings.EngineOptions(params),
		metrics.NewEngine(network),
		metrics.NewStore(network),
		logger.Named("engine"),
	)

	var journalRepo *clickhouse.Repository
	if opts.ClickhouseDSN != "" {
		journalRepo, err = clickhouse.NewRepository(opts.ClickhouseDSN, metrics.NewJournal(network))
		if err != nil {
			return fmt.Errorf("init journal repository: %w", err)
		}
		defer func() {
			if err := journalRepo.Close(); err != nil {
				logger.Warn("close journal repository", zap.Error(err))
			}
		}()

		j := journal.New(journalRepo, metrics.NewJournal(network), network, settings.JournalOptions(), logger.Named("journal"))
		// the engine is stopped first, so its last events are still flushed
		j.Start(context.WithoutCancel(ctx))
		defer j.Stop()
		if err := engine.SubscribeReorganize(j.Handle); err != nil {
			return fmt.Errorf("subscribe journal: %w", err)
		}
	}

	if err := engine.Start(opts.DataDir); err != nil {
		return fmt.Errorf("start engine: %w", err)
	}
	defer func() {
		if err := engine.Stop(); err != nil {
			logger.Error("stop engine", zap.Error(err))
		}
	}()

	if journalRepo != nil {
		compareJournal(ctx, journalRepo, engine, network, logger)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return serveGRPC(ctx, newGRPCServer(engine, logger), opts.GRPCAddr, logger)
	})

	handler, err := newHTTPHandler(engine, params, logger)
	if err != nil {
		return err
	}
	g.Go(func() error {
		return serveHTTP(ctx, handler, opts.HTTPAddr, logger)
	})

	if opts.RPCHost != "" {
		g.Go(func() error {
			return runFollower(ctx, opts, settings, engine, network, logger)
		})
	}
	return g.Wait()
}

func runFollower(ctx context.Context, opts options, settings *config.Config, engine *service.Engine, network model.Network, logger *zap.Logger) error {
	client, err := bitcoin.Dial(opts.RPCHost, opts.RPCUser, opts.RPCPassword, opts.RPCDisableTLS)
	if err != nil {
		return err
	}
	defer func() {
		client.Shutdown()
		client.WaitForShutdown()
	}()

	blockSignal, err := startBlockSignal(ctx, opts.ZMQAddr, logger.Named("zmq"))
	if err != nil {
		return err
	}

	f := follower.New(
		bitcoin.NewRPCClient(client, metrics.NewRPCClient(network)),
		engine,
		metrics.NewFollower(network),
		settings.FollowerOptions(),
		logger.Named("follower"),
		blockSignal,
	)
	err = f.Run(ctx)
	if ctx.Err() != nil {
		return nil
	}
	return fmt.Errorf("follower: %w", err)
}

// compareJournal logs how the journal tip relates to the ledger tip. A
// journal ahead of the ledger means the storage directory was replaced.
func compareJournal(ctx context.Context, repo *clickhouse.Repository, engine *service.Engine, network model.Network, logger *zap.Logger) {
	journalDepth, found, err := repo.LastTipDepth(ctx, network)
	if err != nil {
		logger.Warn("read journal tip", zap.Error(err))
		return
	}
	ledgerDepth, err := engine.FetchLastDepth(ctx)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		logger.Warn("read ledger tip", zap.Error(err))
		return
	}
	fields := []zap.Field{
		zap.Bool("journal_empty", !found),
		zap.Uint32("journal_tip_depth", journalDepth),
		zap.Bool("ledger_empty", err != nil),
		zap.Uint32("ledger_tip_depth", ledgerDepth),
	}
	if found && (err != nil || journalDepth > ledgerDepth) {
		logger.Warn("journal is ahead of the ledger", fields...)
		return
	}
	logger.Info("journal attached", fields...)
}

func newGRPCServer(engine *service.Engine, logger *zap.Logger) *grpc.Server {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger.Named("grpc")),
	}
	server := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	healthpb.RegisterHealthServer(server, transport.NewHealthHandler(engine))
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(server)
	return server
}

func serveGRPC(ctx context.Context, server *grpc.Server, addr string, logger *zap.Logger) error {
	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen grpc %s: %w", addr, err)
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down grpc server")
		server.GracefulStop()
	}()

	logger.Info("starting grpc server", zap.String("addr", addr))
	if err := server.Serve(socket); err != nil {
		return fmt.Errorf("serve grpc: %w", err)
	}
	return nil
}

func newHTTPHandler(engine *service.Engine, params *chaincfg.Params, logger *zap.Logger) (http.Handler, error) {
	gw := gwruntime.NewServeMux()
	if err := transport.NewLedgerHandler(engine, params, logger.Named("http")).Register(gw); err != nil {
		return nil, fmt.Errorf("register ledger handler: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())
	return cors.Default().Handler(mux), nil
}

func serveHTTP(ctx context.Context, handler http.Handler, addr string, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve http: %w", err)
	}
	return nil
}
