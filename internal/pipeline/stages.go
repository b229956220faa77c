package pipeline

import (
	"github.com/rs/zerolog"
)

type Stage string

const (
	StageReceived      Stage = "RECEIVED"
	StageLinksExpanded Stage = "LINKS_EXPANDED"
	StageLoaded        Stage = "LOADED"
	StageChunked       Stage = "CHUNKED"
	StageIndexed       Stage = "INDEXED"
	StageRetrieved     Stage = "RETRIEVED"
	StageSynthesized   Stage = "SYNTHESIZED"
	StageResponded     Stage = "RESPONDED"
)

func logStage(logger *zerolog.Logger, stage Stage) *zerolog.Event {
	return logger.Info().Str("stage", string(stage))
}
