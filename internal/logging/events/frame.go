package events

import "github.com/hexfield/evmplay/internal/logging"

type FrameTracer struct{}

type SearchTracer struct{}

type CommandTracer struct{}

var (
	Frame   = FrameTracer{}
	Search  = SearchTracer{}
	Command = CommandTracer{}
)

func (FrameTracer) BlockAdded(index int) {
	logging.Trace("frame.block-added", map[string]interface{}{"index": index})
}

func (FrameTracer) BlockFocused(index int) {
	logging.Trace("frame.block-focused", map[string]interface{}{"index": index})
}

func (FrameTracer) Toggle(on bool) {
	logging.Trace("frame.toggle", map[string]interface{}{"on": on})
}

func (FrameTracer) Rename(index int, label string) {
	logging.Trace("frame.rename", map[string]interface{}{"index": index, "label": label})
}

func (FrameTracer) Result(index, words int, errText string) {
	payload := map[string]interface{}{"index": index, "words": words}
	if errText != "" {
		payload["error"] = errText
	}
	logging.Trace("frame.result", payload)
}

func (FrameTracer) FocusApplied(index int) {
	logging.Trace("frame.focus-applied", map[string]interface{}{"index": index})
}

func (FrameTracer) SearchMode(active bool) {
	logging.Trace("frame.search-mode", map[string]interface{}{"active": active})
}

func (SearchTracer) Opened() {
	logging.Trace("search.open", nil)
}

func (SearchTracer) Closed() {
	logging.Trace("search.close", nil)
}

func (SearchTracer) Filter(query string, matches int) {
	logging.Trace("search.filter", map[string]interface{}{"query": query, "matches": matches})
}

func (CommandTracer) Queue(index int, raw string) {
	logging.Trace("command.queue", map[string]interface{}{"index": index, "bytes": len(raw)})
}

func (CommandTracer) Result(index, words int, errText string) {
	payload := map[string]interface{}{"index": index, "words": words}
	if errText != "" {
		payload["error"] = errText
	}
	logging.Trace("command.result", payload)
}
