// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package oracle

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/palletd/commandrecord"
	"github.com/bitmark-inc/palletd/fault"
	"github.com/bitmark-inc/palletd/keypair"
)

// DefaultPriceURL - the feed queried when not configured
const DefaultPriceURL = "https://min-api.cryptocompare.com/data/price?fsym=BTC&tsyms=USD"

// DefaultFetchDeadline - hard deadline on one price fetch
const DefaultFetchDeadline = 6000 * time.Millisecond

// at most one fetch per second regardless of block rate
const fetchInterval = time.Second

// Submitter - where the worker sends its unsigned commands
type Submitter interface {
	Submit(command commandrecord.Command) error
}

// Worker - the per-block price fetcher
//
// best effort only: every failure is logged and dropped, the next
// block triggers a fresh attempt
type Worker struct {
	log      *logger.L
	client   *http.Client
	url      string
	deadline time.Duration
	limiter  *rate.Limiter
	keys     *keypair.KeyPair
	pool     Submitter
}

// NewWorker - construct a worker, keys may be nil on a non-authority node
func NewWorker(url string, deadline time.Duration, keys *keypair.KeyPair, pool Submitter) *Worker {
	if "" == url {
		url = DefaultPriceURL
	}
	if deadline <= 0 {
		deadline = DefaultFetchDeadline
	}
	return &Worker{
		log:      logger.New("worker"),
		client:   &http.Client{},
		url:      url,
		deadline: deadline,
		limiter:  rate.NewLimiter(rate.Every(fetchInterval), 1),
		keys:     keys,
		pool:     pool,
	}
}

// Run - one invocation for a freshly imported block
//
// never blocks block production: rate limited, deadline bounded, and
// all errors are swallowed after logging
func (w *Worker) Run(blockNumber uint64) {
	if !w.limiter.Allow() {
		w.log.Debugf("rate limited at block: %d", blockNumber)
		return
	}

	if nil == w.keys {
		w.log.Errorf("skipping: %s", fault.MissingSigningKey)
		return
	}

	price, err := w.fetchPrice()
	if nil != err {
		w.log.Warnf("price fetch error: %s", err)
		return
	}
	w.log.Infof("got price: %d cents", price)

	timestamp := uint64(time.Now().UnixNano() / int64(time.Millisecond))
	payload := commandrecord.PricePayload{
		Number:      price,
		Public:      w.keys.Account(),
		BlockNumber: blockNumber,
	}

	err = w.pool.Submit(&commandrecord.SubmitPricePayload{
		Origin:    commandrecord.None(),
		Timestamp: timestamp,
		Payload:   payload,
		Signature: w.keys.Sign(payload.Pack()),
	})
	if nil != err {
		w.log.Warnf("submit error: %s", err)
		return
	}
	w.log.Debugf("submitted price for block: %d", blockNumber)
}

func (w *Worker) fetchPrice() (uint32, error) {
	ctx, cancel := context.WithTimeout(context.Background(), w.deadline)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, w.url, nil)
	if nil != err {
		return 0, err
	}

	response, err := w.client.Do(request)
	if nil != err {
		return 0, err
	}
	defer response.Body.Close()

	if http.StatusOK != response.StatusCode {
		w.log.Warnf("unexpected status: %d", response.StatusCode)
		return 0, fault.BadPriceResponse
	}

	body, err := ioutil.ReadAll(response.Body)
	if nil != err {
		return 0, err
	}

	return ParsePrice(body)
}

// ParsePrice - extract the USD price in cents from a feed response
//
// body must be a JSON object carrying a "USD" number; the value is
// converted to fixed point cents:
//   integer*100 + fraction/10^(fraction_length-2)
// with the exponent saturating at zero for short fractions
func ParsePrice(body []byte) (uint32, error) {
	var quote map[string]json.Number
	err := json.Unmarshal(body, &quote)
	if nil != err {
		return 0, fault.BadPriceResponse
	}

	usd, ok := quote["USD"]
	if !ok {
		return 0, fault.BadPriceResponse
	}

	s := usd.String()
	integerPart := s
	fractionPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		integerPart = s[:i]
		fractionPart = s[i+1:]
	}

	integer, err := parseDigits(integerPart)
	if nil != err {
		return 0, err
	}

	fraction := uint64(0)
	if "" != fractionPart {
		fraction, err = parseDigits(fractionPart)
		if nil != err {
			return 0, err
		}
		for i := len(fractionPart); i > 2; i -= 1 {
			fraction /= 10
		}
	}

	return uint32(integer*100 + fraction), nil
}

func parseDigits(s string) (uint64, error) {
	if "" == s {
		return 0, fault.BadPriceResponse
	}
	value := uint64(0)
	for i := 0; i < len(s); i += 1 {
		if s[i] < '0' || s[i] > '9' {
			return 0, fault.BadPriceResponse
		}
		value = value*10 + uint64(s[i]-'0')
	}
	return value, nil
}
