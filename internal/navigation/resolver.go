// Package navigation decides which stage the respondent sees next from a
// completed component's configured destination.
package navigation

import (
	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
)

// Kind discriminates the three possible resolutions.
type Kind string

const (
	KindStage  Kind = "stage"
	KindSubmit Kind = "submit"
	KindLink   Kind = "link"
)

// Resolution is the outcome of resolving a trigger. A link resolution
// opens a new browsing context and does not advance the respondent.
type Resolution struct {
	Kind    Kind   `json:"kind"`
	StageID string `json:"stage_id,omitempty"`
	URL     string `json:"url,omitempty"`
}

// Trigger carries the destination fields of whatever completed: a button
// action, a selected option, or a timed component's post-delay navigation.
// Exactly one of the three groups is populated by the caller.
type Trigger struct {
	ButtonAction models.ButtonAction
	ButtonLink   string

	Destination        models.Destination
	DestinationStageID string

	TimedNavigation models.TimedNavigation
	TimedStageID    string
	TimedURL        string
}

// Warning is a non-fatal configuration problem surfaced to the editor.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	StageID string `json:"stage_id,omitempty"`
}

// ButtonTrigger builds a trigger from a button config.
func ButtonTrigger(action models.ButtonAction, link string) Trigger {
	return Trigger{ButtonAction: action, ButtonLink: link}
}

// OptionTrigger builds a trigger from a selected option's destination.
func OptionTrigger(destination models.Destination, stageID string) Trigger {
	return Trigger{Destination: destination, DestinationStageID: stageID}
}

// TimedTrigger builds a trigger from a timed component's navigation fields.
func TimedTrigger(nav models.TimedNavigation, stageID, url string) Trigger {
	return Trigger{TimedNavigation: nav, TimedStageID: stageID, TimedURL: url}
}

// ResolveNext computes the next position from a trigger and the ordered
// stage id list. The rules, in precedence order:
//
//   - a specific destination with a non-empty, existing stage id wins;
//   - link opens externally and does not advance;
//   - submit ends the flow;
//   - everything else, including dangling or missing destinations,
//     degrades to next.
//
// Advancing past the final stage resolves to submit. The function never
// fails; configuration gaps come back as warnings for the editor.
func ResolveNext(trigger Trigger, stageOrder []string, currentStageID string) (Resolution, []Warning) {
	var warnings []Warning

	switch {
	case trigger.ButtonAction != "":
		switch trigger.ButtonAction {
		case models.ActionLink:
			if trigger.ButtonLink != "" {
				return Resolution{Kind: KindLink, URL: trigger.ButtonLink}, nil
			}
			warnings = append(warnings, Warning{
				Code:    "empty_button_link",
				Message: "button action is link but no url is configured",
				StageID: currentStageID,
			})
		case models.ActionSubmit:
			return Resolution{Kind: KindSubmit}, nil
		}

	case trigger.Destination != "":
		if trigger.Destination == models.DestinationSubmit {
			return Resolution{Kind: KindSubmit}, nil
		}
		if trigger.Destination == models.DestinationSpecific && trigger.DestinationStageID != "" {
			if stageExists(stageOrder, trigger.DestinationStageID) {
				return Resolution{Kind: KindStage, StageID: trigger.DestinationStageID}, nil
			}
			warnings = append(warnings, Warning{
				Code:    "dangling_destination",
				Message: "destination stage no longer exists",
				StageID: currentStageID,
			})
		}

	case trigger.TimedNavigation != "":
		switch trigger.TimedNavigation {
		case models.TimedSubmit:
			return Resolution{Kind: KindSubmit}, nil
		case models.TimedLink:
			if trigger.TimedURL != "" {
				return Resolution{Kind: KindLink, URL: trigger.TimedURL}, nil
			}
		case models.TimedSpecific:
			if trigger.TimedStageID != "" && stageExists(stageOrder, trigger.TimedStageID) {
				return Resolution{Kind: KindStage, StageID: trigger.TimedStageID}, nil
			}
			warnings = append(warnings, Warning{
				Code:    "dangling_destination",
				Message: "timed destination stage no longer exists",
				StageID: currentStageID,
			})
		}
	}

	return nextResolution(stageOrder, currentStageID), warnings
}

// nextResolution advances to the structurally-following stage, or submits
// when the current stage is last or unknown.
func nextResolution(stageOrder []string, currentStageID string) Resolution {
	for i, id := range stageOrder {
		if id == currentStageID {
			if i+1 < len(stageOrder) {
				return Resolution{Kind: KindStage, StageID: stageOrder[i+1]}
			}
			return Resolution{Kind: KindSubmit}
		}
	}
	return Resolution{Kind: KindSubmit}
}

func stageExists(stageOrder []string, id string) bool {
	for _, s := range stageOrder {
		if s == id {
			return true
		}
	}
	return false
}
