// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/travel-tracker/session"
	"github.com/danielhkuo/travel-tracker/testutil"
)

// TestConcurrentSwitches_SharedLastWriteWins verifies that racing switches on
// the shared pointer settle on one of the submitted users and that a
// following add is recorded for that user
func TestConcurrentSwitches_SharedLastWriteWins(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	sessions := session.NewShared(1)
	h, _ := newTestHandler(t, db, sessions)

	numSwitches := 20
	var redirects atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numSwitches; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			userID := strconv.Itoa(idx%2 + 1)
			w := postForm(h.SwitchUser, "/user", url.Values{"user": {userID}})
			if w.Code == http.StatusFound {
				redirects.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(redirects.Load()) != numSwitches {
		t.Errorf("Expected %d redirects, got %d", numSwitches, redirects.Load())
	}

	landed, err := sessions.CurrentUserID(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if landed != 1 && landed != 2 {
		t.Fatalf("Expected pointer to land on 1 or 2, got %d", landed)
	}

	w := postForm(h.AddCountry, "/add", url.Values{"country": {"chile"}})
	testutil.AssertRedirect(t, w, "/")

	if codes := testutil.VisitedCodes(t, db, landed); len(codes) != 1 || codes[0] != "CL" {
		t.Errorf("Expected CL recorded for user %d, got %v", landed, codes)
	}
	if total := testutil.CountVisits(t, db, 0); total != 1 {
		t.Errorf("Expected exactly 1 visit row, got %d", total)
	}
}

// TestConcurrentAdds_CookieClientsIsolated verifies that clients holding
// different session cookies record visits for their own users only
func TestConcurrentAdds_CookieClientsIsolated(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h, _ := newTestHandler(t, db, testutil.NewCookieSessions())

	cookies := map[int64]*http.Cookie{}
	for _, id := range []int64{1, 2} {
		w := postForm(h.SwitchUser, "/user", url.Values{"user": {strconv.FormatInt(id, 10)}})
		cookies[id] = testutil.SessionCookie(w)
		if cookies[id] == nil {
			t.Fatalf("Expected session cookie for user %d", id)
		}
	}

	perUser := 5
	inputs := map[int64]string{1: "norway", 2: "kenya"}

	var wg sync.WaitGroup
	var failures atomic.Int32

	for id, input := range inputs {
		for i := 0; i < perUser; i++ {
			wg.Add(1)
			go func(userID int64, country string) {
				defer wg.Done()

				w := postForm(h.AddCountry, "/add", url.Values{"country": {country}}, cookies[userID])
				if w.Code != http.StatusFound {
					failures.Add(1)
				}
			}(id, input)
		}
	}

	wg.Wait()

	if failures.Load() != 0 {
		t.Fatalf("Expected all adds to succeed, %d failed", failures.Load())
	}

	want := map[int64]string{1: "NO", 2: "KE"}
	for id, code := range want {
		codes := testutil.VisitedCodes(t, db, id)
		if len(codes) != perUser {
			t.Errorf("User %d: expected %d visits, got %d", id, perUser, len(codes))
		}
		for _, c := range codes {
			if c != code {
				t.Errorf("User %d: expected only %s, got %v", id, code, codes)
				break
			}
		}
	}
}
