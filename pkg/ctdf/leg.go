package ctdf

import (
	"encoding/json"
	"fmt"
)

type LegKind string

const (
	LegKindAccess          LegKind = "AccessLeg"
	LegKindPTConnection    LegKind = "PTConnectionLeg"
	LegKindAlternativeMode LegKind = "AlternativeModeLeg"
	LegKindPTRide          LegKind = "PTRideLeg"
	LegKindUnknown         LegKind = "UNKNOWN"
)

// Leg is one segment of a trip. Exactly one of the variant pointers is set, matching Kind.
// Legs of an unknown kind keep only Raw, which is re-emitted unchanged on encode.
type Leg struct {
	Kind            LegKind
	Typename        string
	Access          *AccessLeg
	Connection      *PTConnectionLeg
	AlternativeMode *AlternativeModeLeg
	Ride            *PTRideLeg

	Raw json.RawMessage
}

type LegStop struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Typename string `json:"__typename,omitempty"`
}

type AccessLeg struct {
	ID       string          `json:"id,omitempty"`
	Duration json.RawMessage `json:"duration,omitempty"`
	Distance json.RawMessage `json:"distance,omitempty"`
	Start    *LegStop        `json:"start,omitempty"`
	End      *LegStop        `json:"end,omitempty"`
}

type PTConnectionLeg struct {
	ID       string          `json:"id,omitempty"`
	Duration json.RawMessage `json:"duration,omitempty"`
	Start    *LegStop        `json:"start,omitempty"`
	End      *LegStop        `json:"end,omitempty"`
	Notices  []Notice        `json:"notices,omitempty"`
}

type AlternativeModeLeg struct {
	ID       string          `json:"id,omitempty"`
	Duration json.RawMessage `json:"duration,omitempty"`
	Mode     *string         `json:"mode,omitempty"`
}

type PTRideLeg struct {
	ID             string            `json:"id,omitempty"`
	Duration       json.RawMessage   `json:"duration,omitempty"`
	Start          *LegStop          `json:"start,omitempty"`
	End            *LegStop          `json:"end,omitempty"`
	Departure      *ArrivalDeparture `json:"departure,omitempty"`
	Arrival        *ArrivalDeparture `json:"arrival,omitempty"`
	ServiceJourney *ServiceJourney   `json:"serviceJourney,omitempty"`
}

type ServiceJourney struct {
	ID                string             `json:"id"`
	StopPoints        []StopPoint        `json:"stopPoints,omitempty"`
	ServiceProducts   []ServiceProduct   `json:"serviceProducts,omitempty"`
	Direction         *string            `json:"direction,omitempty"`
	ServiceAlteration *ServiceAlteration `json:"serviceAlteration,omitempty"`
	Situations        []Situation        `json:"situations,omitempty"`
	Notices           []Notice           `json:"notices,omitempty"`
	QuayTypeName      *string            `json:"quayTypeName,omitempty"`
	QuayTypeShortName *string            `json:"quayTypeShortName,omitempty"`
}

type StopPoint struct {
	Place                          *LegStop                        `json:"place,omitempty"`
	Occupancy                      *Occupancy                      `json:"occupancy,omitempty"`
	AccessibilityBoardingAlighting *AccessibilityBoardingAlighting `json:"accessibilityBoardingAlighting,omitempty"`
	StopStatus                     *string                         `json:"stopStatus,omitempty"`
	StopStatusFormatted            *string                         `json:"stopStatusFormatted,omitempty"`
	DelayUndefined                 bool                            `json:"delayUndefined"`
}

type ServiceAlteration struct {
	Cancelled               bool    `json:"cancelled"`
	CancelledText           *string `json:"cancelledText,omitempty"`
	PartiallyCancelled      bool    `json:"partiallyCancelled"`
	PartiallyCancelledText  *string `json:"partiallyCancelledText,omitempty"`
	Redirected              bool    `json:"redirected"`
	RedirectedText          *string `json:"redirectedText,omitempty"`
	Reachable               bool    `json:"reachable"`
	ReachableText           *string `json:"reachableText,omitempty"`
	DelayText               *string `json:"delayText,omitempty"`
	UnplannedStopPointsText *string `json:"unplannedStopPointsText,omitempty"`
	QuayChangedText         *string `json:"quayChangedText,omitempty"`
}

func (l *Leg) UnmarshalJSON(data []byte) error {
	var discriminator struct {
		Typename string `json:"__typename"`
	}
	if err := json.Unmarshal(data, &discriminator); err != nil {
		return fmt.Errorf("decode leg: %w", err)
	}

	*l = Leg{
		Kind:     LegKind(discriminator.Typename),
		Typename: discriminator.Typename,
		Raw:      append(json.RawMessage(nil), data...),
	}

	var target any
	switch l.Kind {
	case LegKindAccess:
		l.Access = &AccessLeg{}
		target = l.Access
	case LegKindPTConnection:
		l.Connection = &PTConnectionLeg{}
		target = l.Connection
	case LegKindAlternativeMode:
		l.AlternativeMode = &AlternativeModeLeg{}
		target = l.AlternativeMode
	case LegKindPTRide:
		l.Ride = &PTRideLeg{}
		target = l.Ride
	default:
		l.Kind = LegKindUnknown
		return nil
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode %s: %w", l.Typename, err)
	}

	return nil
}

// MarshalJSON writes the leg back as the backend sent it.
func (l Leg) MarshalJSON() ([]byte, error) {
	if len(l.Raw) > 0 {
		return l.Raw, nil
	}

	var variant any
	switch l.Kind {
	case LegKindAccess:
		variant = l.Access
	case LegKindPTConnection:
		variant = l.Connection
	case LegKindAlternativeMode:
		variant = l.AlternativeMode
	case LegKindPTRide:
		variant = l.Ride
	default:
		return []byte("null"), nil
	}

	encoded, err := json.Marshal(variant)
	if err != nil {
		return nil, err
	}

	return withTypename(encoded, string(l.Kind))
}

// Start is the boarding stop of the leg, if the variant carries one.
func (l *Leg) Start() *LegStop {
	switch {
	case l.Access != nil:
		return l.Access.Start
	case l.Connection != nil:
		return l.Connection.Start
	case l.Ride != nil:
		return l.Ride.Start
	}

	return nil
}

// End is the alighting stop of the leg, if the variant carries one.
func (l *Leg) End() *LegStop {
	switch {
	case l.Access != nil:
		return l.Access.End
	case l.Connection != nil:
		return l.Connection.End
	case l.Ride != nil:
		return l.Ride.End
	}

	return nil
}

// withTypename splices a __typename member into an encoded JSON object.
func withTypename(object []byte, typename string) ([]byte, error) {
	name, err := json.Marshal(typename)
	if err != nil {
		return nil, err
	}

	if len(object) < 2 || object[0] != '{' {
		return object, nil
	}

	out := make([]byte, 0, len(object)+len(name)+16)
	out = append(out, `{"__typename":`...)
	out = append(out, name...)
	if len(object) > 2 {
		out = append(out, ',')
	}
	out = append(out, object[1:]...)

	return out, nil
}
