package stream

import "github.com/gowavelet/modwt/modwt"

// Subscriber is the abstract consumer spec §9 maps the source's
// listener/publisher pattern onto: {on_subscribe(credit_source),
// on_item(coefficients), on_error(kind), on_complete()}. A Subscriber
// must not block OnItem indefinitely; a slow consumer should request
// fewer items instead.
type Subscriber interface {
	OnSubscribe(credit CreditSource)
	OnItem(result *modwt.SingleLevelResult)
	OnError(err error)
	OnComplete()
}

// CreditSource lets a Subscriber grant the producer permission to
// deliver n more items (the request-N back-pressure protocol spec §5
// and §9 describe). The producer pauses delivery whenever outstanding
// credit reaches zero.
type CreditSource interface {
	Request(n int)
}

type creditSource struct {
	s *Stream
}

func (c creditSource) Request(n int) {
	if n <= 0 {
		return
	}
	c.s.mu.Lock()
	c.s.credit += int64(n)
	c.s.mu.Unlock()
	c.s.emitPending()
}
