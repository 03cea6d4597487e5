package fetch

// Record is one partition's fetch outcome flattened out of a sequence of
// Replies: a topic name, a partition id, and that partition's Outcome.
type Record struct {
	Topic     string
	Partition int32
	Outcome   Outcome
}

// Iterator is a {Init -> Emitting <-> AdvancingTopic <-> AdvancingReply
// -> Done} state machine expressed as three nested cursor positions
// rather than named states: Next advances the innermost (partition)
// cursor first, then falls through to the topic cursor, then the reply
// cursor, terminating when the reply cursor is exhausted. done is the
// Done state.
type Iterator struct {
	replies []*Reply

	replyIdx int
	topicIdx int
	partIdx  int

	currentTopic string
	done         bool
}

// NewIterator returns a lazy, finite, non-restartable iterator over
// every (topic, partition, outcome) triple across replies, in on-wire
// order: for each reply, for each of its topics, for each of that
// topic's partitions. Replies with zero topics, and topics with zero
// partitions, are skipped transparently. Independent iterators over the
// same replies may run concurrently; a single Iterator is not itself
// safe for concurrent use.
func NewIterator(replies []*Reply) *Iterator {
	return &Iterator{replies: replies}
}

// Next returns the next Record, or (Record{}, false) once every
// partition of every topic of every reply has been emitted. Once it
// returns false, every later call also returns false.
func (it *Iterator) Next() (Record, bool) {
	for {
		if it.done {
			return Record{}, false
		}
		if it.replyIdx >= len(it.replies) {
			it.done = true
			return Record{}, false
		}

		reply := it.replies[it.replyIdx]
		if it.topicIdx >= len(reply.topics) {
			// AdvancingReply: this reply is exhausted, move on.
			it.replyIdx++
			it.topicIdx = 0
			it.partIdx = 0
			continue
		}

		topic := reply.topics[it.topicIdx]
		if it.partIdx >= len(topic.partitions) {
			// AdvancingTopic: this topic is exhausted, move on.
			it.topicIdx++
			it.partIdx = 0
			continue
		}

		// Emitting.
		it.currentTopic = topic.name
		part := topic.partitions[it.partIdx]
		it.partIdx++
		return Record{
			Topic:     it.currentTopic,
			Partition: part.partition,
			Outcome:   part.outcome,
		}, true
	}
}
