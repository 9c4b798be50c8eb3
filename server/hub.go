package server

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"vc/calculator"
	"vc/model"
)

// Hub 维护一条前端连接，处理设计点下发与分析启动
type Hub struct {
	c    calculator.Calculator
	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	envSet  chan model.Msg
	started chan model.Msg
	stopped chan model.Msg
}

func NewHub() *Hub {
	return &Hub{
		msg:     make(chan model.Msg, 10),
		envSet:  make(chan model.Msg, 10),
		started: make(chan model.Msg, 10),
		stopped: make(chan model.Msg, 10),
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			switch msg.Type {
			case "env":
				var env model.Env
				err := json.Unmarshal([]byte(msg.Content), &env)
				if err != nil {
					log.Println("err: ", err)
					continue
				}
				h.c.SetEnv(env)
				reply := model.Msg{
					Type:    "envSet",
					Content: "env is set",
				}
				h.envSet <- reply
			case "evapWick":
				var spec model.WickSpec
				err := json.Unmarshal([]byte(msg.Content), &spec)
				if err != nil {
					log.Println("err: ", err)
					continue
				}
				h.c.SetEvapWick(spec)
				reply := model.Msg{
					Type:    "envSet",
					Content: "evap wick is set",
				}
				h.envSet <- reply
			case "condWick":
				var spec model.WickSpec
				err := json.Unmarshal([]byte(msg.Content), &spec)
				if err != nil {
					log.Println("err: ", err)
					continue
				}
				h.c.SetCondWick(spec)
				reply := model.Msg{
					Type:    "envSet",
					Content: "cond wick is set",
				}
				h.envSet <- reply
			case "start":
				reply := model.Msg{
					Type: "started",
				}
				h.started <- reply
			case "stop":
				reply := model.Msg{
					Type:    "stopped",
					Content: "stopped",
				}
				h.stopped <- reply
			default:
				log.Println("no such type")
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.envSet:
			err := h.conn.WriteJSON(&reply)
			if err != nil {
				log.Println("err: ", err)
			}
		case reply := <-h.started:
			if err := h.c.Run(); err != nil {
				// 设计参数检查未通过，原样回传错误信息
				reply.Type = "failed"
				reply.Content = err.Error()
			} else {
				data, err := json.Marshal(h.c.BuildResult())
				if err != nil {
					log.Println("err: ", err)
				}
				reply.Content = string(data)
			}
			err := h.conn.WriteJSON(&reply)
			if err != nil {
				log.Println("err: ", err)
			}
		case reply := <-h.stopped:
			err := h.conn.WriteJSON(&reply)
			if err != nil {
				log.Println("err: ", err)
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}
