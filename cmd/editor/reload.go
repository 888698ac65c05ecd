package main

import (
	"github.com/RezixDev/map-editor/generator"
	"github.com/RezixDev/map-editor/logger"
	"github.com/RezixDev/map-editor/prefabs"
	"go.uber.org/zap"
)

// drainWatcher applies pending registry changes without blocking the frame.
func (e *Editor) drainWatcher() {
	if e.watcher == nil {
		return
	}
	for {
		select {
		case ch, ok := <-e.watcher.Events:
			if !ok {
				e.watcher = nil
				return
			}
			e.applyChange(ch)
		case err, ok := <-e.watcher.Errors:
			if ok {
				logger.Warn("prefab watcher", zap.Error(err))
			}
		default:
			return
		}
	}
}

func (e *Editor) applyChange(ch prefabs.Change) {
	switch ch.Kind {
	case prefabs.GroupChanged:
		groups, err := prefabs.LoadGroups()
		if err != nil {
			e.setStatus("reload failed: %v", err)
			return
		}
		for _, g := range groups {
			e.session.PutGroup(g)
		}
		e.setStatus("reloaded %d components", len(groups))
	case prefabs.ScriptChanged:
		gc := e.cfg.Generator
		if gc.Policy == "" {
			return
		}
		gen, err := generator.Configure(gc.Seed, gc.Drift, gc.Policy)
		if err != nil {
			e.setStatus("policy reload failed: %v", err)
			return
		}
		e.session.SetGenerator(gen)
		e.setStatus("reloaded policy %s", gc.Policy)
	}
}
