package main

import (
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"vc/calculator"
	"vc/chart"
	"vc/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	c := calculator.NewCalculator(0)
	if err := c.Run(); err != nil {
		log.Error("设计参数检查未通过: ", err)
		return
	}
	fmt.Print(c.Report())

	cfg := calculator.Cfg()
	if cfg.ChartPath != "" {
		if err := chart.SavePressureBalance(c.BuildResult(), cfg.ChartPath); err != nil {
			log.Error("压力平衡图输出失败: ", err)
		}
	}
	if cfg.ServerEnable {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
		s := server.NewServer(cfg.ServerAddr, upgrader)
		s.Serve()
	}
}
