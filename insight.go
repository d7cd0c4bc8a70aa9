package main

import (
	"flag"
	"fmt"

	"github.com/playdecks/insight/internal/config"
	"github.com/playdecks/insight/internal/handler"
	"github.com/playdecks/insight/internal/svc"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/insight.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting insight server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
