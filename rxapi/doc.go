// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rxapi exposes HTTP requests as one-shot reactive publishers.
//
// An [API] is a chained request builder (URL, method, headers, parameters)
// that also implements [Publisher]. Subscribing hands the subscriber a
// [Subscription]; the first positive demand starts exactly one HTTP call
// through the [Engine] (a [Session] backed by resty by default). The result
// is delivered once:
//
//   - OnNext(body) followed by OnComplete for any response other than 401;
//   - OnError([ErrUnauthorized]) for HTTP 401;
//   - OnError([ErrNoInternetConnection]) for transport-level failures;
//   - OnError(err) with the underlying error for everything else.
//
// Cancelling the subscription (or the context passed to Subscribe) aborts
// the call and guarantees no further events.
//
// # Basic Usage
//
//	session := rxapi.NewSession(rxapi.SessionConfig{RequestTimeout: 30 * time.Second})
//
//	body, err := rxapi.Await(ctx, rxapi.New(session).
//	    SetURL("https://jsonplaceholder.typicode.com/users/1"))
//	if err != nil {
//	    return err
//	}
//	user, err := rxapi.Decode[User](body)
//
// Sessions are caller-owned: there is no process-wide default instance.
package rxapi
