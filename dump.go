package lirs

import (
	"fmt"
	"io"
)

// Dump writes a textual representation of the cache's state to w: a header,
// a capacity block, the S listing, the Q listing, and the resident-values
// listing. Each listing prints "(empty)" when appropriate. The format is
// for humans debugging a running cache, not a wire format: callers should
// not parse this output.
func (c *Cache[K, V]) Dump(w io.Writer) error {
	var err error
	printf := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}

	printf("\n================== LIRS Cache State ==================\n\n")

	printf("[Capacity]\n")
	printf("  Total: %d | LIR: %d | HIR: %d\n", c.capacity, c.lirCapacity, c.hirCapacity)
	printf("  LIR count: %d | Cache size: %d\n\n", c.lirCount, c.Size())

	printf("[Stack S] (top -> bottom)\n")
	empty := true
	for key, class := range c.Stack() {
		empty = false
		printf("  [%v] %s\n", key, classificationLabel(class))
	}
	if empty {
		printf("  (empty)\n")
	}
	printf("\n")

	printf("[Queue Q] (top -> bottom)\n")
	empty = true
	for key := range c.Queue() {
		empty = false
		printf("  [%v]\n", key)
	}
	if empty {
		printf("  (empty)\n")
	}
	printf("\n")

	printf("[Resident Values]\n")
	empty = true
	for key, ve := range c.Values() {
		empty = false
		printf("  {%v: %v} [%s]\n", key, ve.Value, classificationLabel(ve.Class))
	}
	if empty {
		printf("  (empty)\n")
	}
	printf("=======================================================\n\n")

	return err
}

func classificationLabel(class Classification) string {
	switch class {
	case LIR:
		return "LIR"
	case HIRResident:
		return "HIR-resident"
	case HIRGhost:
		return "HIR-ghost"
	case HIR:
		return "HIR"
	default:
		return "unknown"
	}
}
