package backend

import (
	"context"
	"fmt"

	"github.com/vk/framegraph/internal/ctxlog"
	"github.com/vk/framegraph/internal/rendergraph"
)

// DispatchCommands walks the schedule range [CmdBeginIndex, CmdBeginIndex+NumCmds)
// in order and calls the callback of every command that has one. Transitions
// are skipped. The first callback error stops the walk and is returned
// wrapped in a *rendergraph.CmdError.
func DispatchCommands(ctx context.Context, g *rendergraph.RenderGraph, info rendergraph.RecordCommandInfo) error {
	logger := ctxlog.FromContext(ctx)
	end := info.CmdBeginIndex + info.NumCmds
	if info.CmdBeginIndex < 0 || info.NumCmds < 0 || end > len(g.Schedule) {
		return fmt.Errorf("%w: record range [%d,+%d) of %d", rendergraph.ErrIndexOutOfBounds, info.CmdBeginIndex, info.NumCmds, len(g.Schedule))
	}

	for i := info.CmdBeginIndex; i < end; i++ {
		rc := g.Schedule[i]
		if rc.IsTransition {
			continue
		}
		c := g.Cmds[rc.CmdID]
		cb := c.Cmd.Callback
		if !cb.IsSet() {
			continue
		}

		cbCtx := &rendergraph.CmdCallbackContext{
			Graph:             g,
			Cmd:               c,
			CmdID:             rc.CmdID,
			RuntimeIndex:      i,
			Args:              c.Cmd.Args,
			Tag:               c.Cmd.Tag,
			UserContext:       cb.UserContext,
			CommandBuffer:     info.CommandBuffer,
			UserRecordContext: info.UserRecordContext,
			FrameIndex:        info.FrameIndex,
		}
		if err := cb.Fn(ctx, cbCtx); err != nil {
			logger.Debug("Dispatch: Command callback failed, stopping.", "cmd", rc.CmdID, "index", i, "error", err)
			return &rendergraph.CmdError{CmdID: rc.CmdID, RuntimeIndex: i, Node: c.Cmd.Label(), Err: err}
		}
	}
	return nil
}
