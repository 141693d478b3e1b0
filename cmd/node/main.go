package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/meverselabs/boosto/cmd/app"
	"github.com/meverselabs/boosto/cmd/closer"
	"github.com/meverselabs/boosto/cmd/config"
	"github.com/meverselabs/boosto/common/rlog"
	"github.com/meverselabs/boosto/core/backend"
	_ "github.com/meverselabs/boosto/core/backend/bolt_driver"
	_ "github.com/meverselabs/boosto/core/backend/leveldb_driver"
	_ "github.com/meverselabs/boosto/core/backend/memory_driver"
	"github.com/meverselabs/boosto/core/chain"
	"github.com/meverselabs/boosto/service/apiserver"
	"github.com/meverselabs/boosto/service/salerpc"
)

type rpcCloser struct {
	s *apiserver.APIServer
}

func (c *rpcCloser) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.s.Shutdown(ctx); err != nil {
		rlog.Warnf("apiserver shutdown: %v", err)
	}
}

func main() {
	cfgPath := flag.String("cfg", "./config.toml", "config file path")
	envPath := flag.String("env", ".env", "env file path")
	flag.Parse()

	cfg := config.DefaultNodeConfig()
	if _, err := os.Stat(*cfgPath); err == nil {
		if err := config.LoadFile(*cfgPath, cfg); err != nil {
			panic(err)
		}
	}
	if err := config.LoadEnv(cfg, *envPath); err != nil {
		panic(err)
	}
	if err := rlog.SetLevel(cfg.LogLevel); err != nil {
		panic(err)
	}
	rlog.SetJSONFormat(cfg.LogJSON)

	cm := closer.NewManager()
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	go func() {
		<-sigc
		cm.CloseAll()
	}()
	defer cm.CloseAll()

	sa, err := app.NewSaleApp(cfg)
	if err != nil {
		panic(err)
	}

	db, err := backend.Create(cfg.StoreDriver, filepath.Join(cfg.StoreRoot, "context"))
	if err != nil {
		panic(err)
	}
	cn := chain.NewChain(chain.NewStore(db), chain.SystemClock{}, cfg.ReceiptCacheSize)
	cm.Add("chain", cn)
	if err := cn.Init(sa.Genesis); err != nil {
		panic(err)
	}
	rlog.Infof("Token %v admin %v", sa.TokenAddress().String(), sa.Admin.String())

	rpcapi := apiserver.NewAPIServer(cn)
	if _, err := salerpc.Register(rpcapi, cn, sa.TokenAddress()); err != nil {
		panic(err)
	}
	cm.Add("apiserver", &rpcCloser{s: rpcapi})
	go func() {
		if err := rpcapi.Run(":" + strconv.Itoa(cfg.RPCPort)); err != nil {
			rlog.Infof("apiserver stopped: %v", err)
		}
	}()
	cm.Wait()
}
