// Package kerr maps Kafka broker protocol error codes to Go errors.
//
// The codes and names below are the ones defined for the magic==0 Fetch
// protocol this module decodes; later broker versions added many more
// codes that are out of scope here.
package kerr

import "fmt"

// Error is a broker-reported protocol error attached to a single partition.
// It is data, not a decoder failure: a non-zero error code never aborts
// decoding of the surrounding reply.
type Error struct {
	Code int16
	Name string
}

func (e *Error) Error() string {
	return fmt.Sprintf("kafka: broker error %d (%s)", e.Code, e.Name)
}

// well-known Fetch-path error codes as of the magic==0 wire protocol.
const (
	codeUnknown                 int16 = -1
	codeNone                    int16 = 0
	codeOffsetOutOfRange        int16 = 1
	codeCorruptMessage          int16 = 2
	codeUnknownTopicOrPartition int16 = 3
	codeInvalidMessageSize      int16 = 4
	codeLeaderNotAvailable      int16 = 5
	codeNotLeaderForPartition   int16 = 6
	codeRequestTimedOut         int16 = 7
	codeBrokerNotAvailable      int16 = 8
	codeReplicaNotAvailable     int16 = 9
	codeMessageSizeTooLarge     int16 = 10
	codeStaleControllerEpoch    int16 = 11
	codeOffsetMetadataTooLarge  int16 = 12
	codeNetworkException        int16 = 13
)

var names = map[int16]string{
	codeUnknown:                 "Unknown",
	codeOffsetOutOfRange:        "OffsetOutOfRange",
	codeCorruptMessage:          "CorruptMessage",
	codeUnknownTopicOrPartition: "UnknownTopicOrPartition",
	codeInvalidMessageSize:      "InvalidMessageSize",
	codeLeaderNotAvailable:      "LeaderNotAvailable",
	codeNotLeaderForPartition:   "NotLeaderForPartition",
	codeRequestTimedOut:         "RequestTimedOut",
	codeBrokerNotAvailable:      "BrokerNotAvailable",
	codeReplicaNotAvailable:     "ReplicaNotAvailable",
	codeMessageSizeTooLarge:     "MessageSizeTooLarge",
	codeStaleControllerEpoch:    "StaleControllerEpoch",
	codeOffsetMetadataTooLarge:  "OffsetMetadataTooLarge",
	codeNetworkException:        "NetworkException",
}

// FromCode maps a broker's 16-bit error code to an *Error, or nil for a
// zero code (success). Unrecognized non-zero codes still produce an
// *Error, named "Unknown(<code>)", so a future protocol addition never
// causes a decode failure — only an unfamiliar but well-formed outcome.
func FromCode(code int16) *Error {
	if code == codeNone {
		return nil
	}
	name, ok := names[code]
	if !ok {
		name = fmt.Sprintf("Unknown(%d)", code)
	}
	return &Error{Code: code, Name: name}
}
