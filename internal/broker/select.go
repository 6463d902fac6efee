package broker

import "india-quote-stream/internal/types"

// Resolve picks the active source identity for one stream connection. The
// requested broker wins only when its credentials are present; otherwise the
// first available broker is used, and with no credentials at all the stream
// degrades to the synthetic mock source. The resolved identity is fixed for
// the lifetime of the stream.
func Resolve(creds Credentials, requested types.Broker) types.Broker {
	if requested != "" && creds.Has(requested) {
		return requested
	}
	if avail := creds.Available(); len(avail) > 0 {
		return avail[0]
	}
	return types.BrokerMock
}
