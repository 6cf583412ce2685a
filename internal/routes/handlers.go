package routes

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const (
	// StaticGreeting is the body of GET / in the cpu variant.
	StaticGreeting = "Hello World from Python app on EKS Fargate with KEDA!"

	// DefaultBurn is how long GET /cpu keeps the CPU busy.
	DefaultBurn = 10 * time.Second

	contentType = "text/plain; charset=utf-8"
)

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	io.WriteString(w, body)
}

// GreetingMessage formats the hello variant greeting. The timestamp uses the
// C ctime layout in the process-local time zone.
func GreetingMessage(hostname string, t time.Time) string {
	return fmt.Sprintf("Hello from %s! (Current time: %s)", hostname, t.Local().Format(time.ANSIC))
}

// Greeting answers with GreetingMessage and writes the same line to echo, so
// it shows up in container logs.
func Greeting(hostname string, now func() time.Time, echo io.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg := GreetingMessage(hostname, now())
		fmt.Fprintln(echo, msg)
		writeText(w, http.StatusOK, msg)
	}
}

// Static always answers with body.
func Static(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeText(w, http.StatusOK, body)
	}
}

// CPUMessage is the body returned once a burn of d has finished.
func CPUMessage(d time.Duration) string {
	return "CPU load generated for " + strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + " seconds"
}

// CPU burns a core for d before answering. The burn ignores client
// disconnects: once started it always runs to the deadline.
func CPU(d time.Duration) http.HandlerFunc {
	msg := CPUMessage(d)
	return func(w http.ResponseWriter, r *http.Request) {
		Burn(d)
		writeText(w, http.StatusOK, msg)
	}
}
