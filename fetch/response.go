package fetch

import (
	"github.com/pkg/errors"

	"github.com/kafkacore/fetchdecode/internal/klog"
	"github.com/kafkacore/fetchdecode/kerr"
)

// OutcomeKind tags which arm of an Outcome is populated.
type OutcomeKind int

const (
	// OutcomeData means the partition was fetched successfully.
	OutcomeData OutcomeKind = iota
	// OutcomeError means the broker reported a protocol error for
	// this partition; no message data was retained.
	OutcomeError
)

// Outcome is a partition's fetch result: either a PartitionData or a
// broker-reported *kerr.Error, never both and never neither. Model it by
// type-switching on the concrete type, not by checking a field for nil.
type Outcome interface {
	Kind() OutcomeKind
}

// DataOutcome is the success arm of Outcome.
type DataOutcome struct {
	Data PartitionData
}

// Kind implements Outcome.
func (DataOutcome) Kind() OutcomeKind { return OutcomeData }

// ErrorOutcome is the failure arm of Outcome.
type ErrorOutcome struct {
	Err *kerr.Error
}

// Kind implements Outcome.
func (ErrorOutcome) Kind() OutcomeKind { return OutcomeError }

// PartitionData is the successfully fetched payload for one partition.
type PartitionData struct {
	highWatermarkOffset int64
	messages            []Message
}

// HighWatermarkOffset is the broker's most recent committed offset for
// the partition.
func (d PartitionData) HighWatermarkOffset() int64 { return d.highWatermarkOffset }

// Messages is the flat, post-decompression sequence of messages fetched
// for the partition, in on-wire order.
func (d PartitionData) Messages() []Message { return d.messages }

// Partition is one partition's entry within a TopicReply.
type Partition struct {
	partition int32
	outcome   Outcome
}

// Number is the partition id.
func (p Partition) Number() int32 { return p.partition }

// Outcome is the broker error or the fetched data for this partition.
func (p Partition) Outcome() Outcome { return p.outcome }

// Topic is one topic's entry within a Reply, with its ordered
// partitions in on-wire order.
type Topic struct {
	name       string
	partitions []Partition
}

// Name is the topic's name.
func (t Topic) Name() string { return t.name }

// Partitions are this topic's partitions, in on-wire order.
func (t Topic) Partitions() []Partition { return t.partitions }

// Reply owns the raw buffer a decoded Fetch reply was parsed from,
// together with any buffers produced while transparently expanding
// compressed message sets. Every borrowed view reachable from a Reply
// (topic names, message keys and values) has the Reply's lifetime; a
// Reply is immutable once constructed and never reallocates or mutates
// its buffers afterward, so those views stay valid for as long as the
// Reply is kept alive. It is safe for concurrent use by any number of
// readers.
type Reply struct {
	raw           []byte
	retained      [][]byte
	correlationID int32
	topics        []Topic
}

// CorrelationID is the value the requester supplied on the matching
// Fetch request, copied verbatim by the broker.
func (r *Reply) CorrelationID() int32 { return r.correlationID }

// Topics are this reply's topics, in on-wire order.
func (r *Reply) Topics() []Topic { return r.topics }

// Options configures a Decode call. The zero value is a valid,
// fully-functional default (a no-op logger, one compression level
// permitted).
type Options struct {
	// Logger receives debug-level decode diagnostics. Defaults to a
	// no-op logger.
	Logger klog.Logger

	// MaxMessageSetDepth bounds how many times a message set may be
	// transparently re-expanded after decompression before decoding
	// fails with ErrInvalidData, guarding against a maliciously or
	// accidentally deeply nested compressed payload. Only a single
	// level of compression is expected in practice; the default of 1
	// enforces exactly that boundary instead of silently recursing
	// without limit. Zero means use the default.
	MaxMessageSetDepth int
}

func (o Options) logger() klog.Logger {
	if o.Logger == nil {
		return klog.Nop{}
	}
	return o.Logger
}

func (o Options) maxDepth() int {
	if o.MaxMessageSetDepth <= 0 {
		return 1
	}
	return o.MaxMessageSetDepth
}

// Decode parses one raw Fetch reply body (the bytes following the
// length-prefix framing consumed by the network layer) into an owning
// Reply. On any decoder-level failure the partially built tree is
// discarded and the error is returned; a non-zero per-partition broker
// error never causes Decode itself to fail.
func Decode(buf []byte, opts Options) (*Reply, error) {
	c := newCursor(buf)
	log := opts.logger()

	reply := &Reply{raw: buf}
	reply.correlationID = c.readI32()

	numTopics := c.readArrayLen()
	if err := c.Err(); err != nil {
		return nil, errors.Wrap(err, "fetch: decode reply header")
	}

	reply.topics = make([]Topic, numTopics)
	for i := range reply.topics {
		topic, retained, err := decodeTopic(c, log, opts.maxDepth())
		if err != nil {
			return nil, errors.Wrapf(err, "fetch: decode topic %d", i)
		}
		reply.topics[i] = topic
		reply.retained = append(reply.retained, retained...)
	}

	if err := c.Err(); err != nil {
		return nil, errors.Wrap(err, "fetch: decode reply")
	}
	return reply, nil
}

func decodeTopic(c *cursor, log klog.Logger, maxDepth int) (Topic, [][]byte, error) {
	name := c.readString()
	numPartitions := c.readArrayLen()
	if err := c.Err(); err != nil {
		return Topic{}, nil, err
	}

	topic := Topic{name: name, partitions: make([]Partition, numPartitions)}
	var retained [][]byte
	for i := range topic.partitions {
		part, partRetained, err := decodePartition(c, log, maxDepth)
		if err != nil {
			return Topic{}, nil, errors.Wrapf(err, "partition %d", i)
		}
		topic.partitions[i] = part
		retained = append(retained, partRetained...)
	}
	return topic, retained, c.Err()
}

// decodePartition always consumes partition id, error code, high
// watermark, and the message-set bytes block, even when the error code
// is non-zero, so the cursor stays aligned for the following partition:
// a broker error must never short-circuit framing.
func decodePartition(c *cursor, log klog.Logger, maxDepth int) (Partition, [][]byte, error) {
	partitionID := c.readI32()
	errCode := c.readI16()
	highWatermark := c.readI64()
	messageSetBody := c.readBytes()

	if err := c.Err(); err != nil {
		return Partition{}, nil, err
	}

	if brokerErr := kerr.FromCode(errCode); brokerErr != nil {
		return Partition{
			partition: partitionID,
			outcome:   ErrorOutcome{Err: brokerErr},
		}, nil, nil
	}

	messages, retained, err := decodeMessageSetFromBorrowed(messageSetBody, log, maxDepth)
	if err != nil {
		return Partition{}, nil, errors.Wrap(err, "decode message set")
	}

	return Partition{
		partition: partitionID,
		outcome: DataOutcome{Data: PartitionData{
			highWatermarkOffset: highWatermark,
			messages:            messages,
		}},
	}, retained, nil
}
