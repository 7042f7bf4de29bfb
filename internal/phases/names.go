package phases

// Phase names as reported by rendergraph.RenderGraph.PhaseNames.
const (
	NamePreProcess         = "pre-process"
	NameCmdDebugPrint      = "cmd-debug-print"
	NameDAGBuilder         = "dag-builder"
	NameAccessDAGBuilder   = "access-dag-builder"
	NameDAGPrint           = "dag-print"
	NameDAGSchedule        = "dag-schedule"
	NameLifetimeAnalysis   = "lifetime-analysis"
	NameMemorySchedule     = "memory-schedule"
	NameScheduleDebugPrint = "schedule-debug-print"
	NameBackend            = "execution-backend"
)
