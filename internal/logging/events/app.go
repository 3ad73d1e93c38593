package events

import "github.com/atomicstack/chopsticks/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(snippets int, pending bool, droppedTicks uint64) {
	logging.Trace("app.exit", map[string]interface{}{"snippets": snippets, "pending": pending, "droppedTicks": droppedTicks})
}

type ExecTracer struct{}

var Exec = ExecTracer{}

func (ExecTracer) Start(cmd string) {
	logging.Trace("exec.start", map[string]interface{}{"cmd": cmd})
}

func (ExecTracer) Finish(code int, signaled bool, err error) {
	payload := map[string]interface{}{"code": code, "signaled": signaled}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("exec.finish", payload)
}
