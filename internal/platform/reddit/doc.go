// Package reddit proxies public subreddit listings and comment threads.
//
// The web client cannot call reddit.com directly from the browser, so the
// gateway fetches the JSON on its behalf. Responses are relayed untouched:
// the status code and body reddit sends are what the caller receives.
package reddit
