package orderview

import "github.com/polkiloo/storeadmin/internal/domain/model"

// TimelineStages is the ordered forward progression shown per order.
// Cancelled is a separate terminal badge, not a stage.
var TimelineStages = []model.OrderStatus{
	model.OrderStatusPending,
	model.OrderStatusProcessing,
	model.OrderStatusShipped,
	model.OrderStatusDelivered,
}

// Stage is one step of a status timeline.
type Stage struct {
	Status  model.OrderStatus
	Reached bool
}

// StatusTimeline marks which stages an order has reached.
type StatusTimeline struct {
	Stages    []Stage
	Cancelled bool
}

// Timeline marks every stage up to and including the current status as reached.
// A status outside the stage list, cancelled included, reaches no stage.
func Timeline(status model.OrderStatus) StatusTimeline {
	current := -1
	for i, s := range TimelineStages {
		if s == status {
			current = i
			break
		}
	}

	tl := StatusTimeline{
		Stages:    make([]Stage, len(TimelineStages)),
		Cancelled: status == model.OrderStatusCancelled,
	}
	for i, s := range TimelineStages {
		tl.Stages[i] = Stage{Status: s, Reached: i <= current}
	}
	return tl
}
