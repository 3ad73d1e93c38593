package events

import "github.com/atomicstack/chopsticks/internal/logging"

type SearchTracer struct{}

type SelectionTracer struct{}

type SnippetTracer struct{}

type EditorTracer struct{}

type CommandTracer struct{}

var (
	Search    = SearchTracer{}
	Selection = SelectionTracer{}
	Snippet   = SnippetTracer{}
	Editor    = EditorTracer{}
	Command   = CommandTracer{}
)

func (SearchTracer) Query(query string, results int) {
	logging.Trace("search.query", map[string]interface{}{"query": query, "results": results})
}

func (SearchTracer) Cleared() {
	logging.Trace("search.clear", nil)
}

func (SelectionTracer) Move(cursor int) {
	logging.Trace("selection.move", map[string]interface{}{"cursor": cursor})
}

func (SnippetTracer) Add() {
	logging.Trace("snippet.add", nil)
}

func (SnippetTracer) Edit(index int, cmd string) {
	logging.Trace("snippet.edit", map[string]interface{}{"index": index, "cmd": cmd})
}

func (SnippetTracer) Save(cmd string, total int) {
	logging.Trace("snippet.save", map[string]interface{}{"cmd": cmd, "total": total})
}

func (SnippetTracer) Remove(index int, cmd string) {
	logging.Trace("snippet.remove", map[string]interface{}{"index": index, "cmd": cmd})
}

func (SnippetTracer) Copy(cmd string) {
	logging.Trace("snippet.copy", map[string]interface{}{"cmd": cmd})
}

func (EditorTracer) Open(seeded bool) {
	logging.Trace("editor.open", map[string]interface{}{"seeded": seeded})
}

func (EditorTracer) Cancel(restored bool) {
	logging.Trace("editor.cancel", map[string]interface{}{"restored": restored})
}

func (EditorTracer) ParseError(err error) {
	if err == nil {
		return
	}
	logging.Trace("editor.parse-error", map[string]interface{}{"error": err.Error()})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
