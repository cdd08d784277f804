package internal

import (
	"fmt"

	"github.com/AnatoleLucet/reactor/arena"
)

func scopeLabel(id arena.NodeID, s *ScopeInner) string {
	return fmt.Sprintf("scope %d (%d signals)", id, s.SignalCount())
}
