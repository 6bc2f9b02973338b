// Command repair-favor-state scans stored favor records, clamps the ones that
// break the state bounds and offers to delete the ones that no longer decode.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	redisclient "github.com/KirkDiggler/rpg-pantheon/internal/redis"
	favorstate "github.com/KirkDiggler/rpg-pantheon/internal/repositories/favor_state"
)

func main() {
	assumeYes := flag.Bool("yes", false, "delete unreadable records without asking")
	flag.Parse()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	client, err := redisclient.NewClientFromURL(redisURL, nil)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}
	ctx := context.Background()

	if err := redisclient.Check(ctx, client, 5*time.Second); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	if _, err := repair(ctx, client, os.Stdin, os.Stdout, *assumeYes); err != nil {
		log.Fatal(err)
	}
}

type report struct {
	Checked  int
	Clamped  []string
	Corrupt  []string
	Deleted  int
	Declined bool
}

func repair(ctx context.Context, client redis.UniversalClient, in io.Reader, out io.Writer, assumeYes bool) (*report, error) {
	fmt.Fprintln(out, "Scanning favor state records...")

	rep := &report{}
	iter := client.Scan(ctx, 0, favorstate.Key("*"), 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		rep.Checked++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Fprintf(out, "Error reading %s: %v\n", key, err)
			continue
		}

		state, err := favorstate.Decode(data)
		switch {
		case err == nil:
			continue
		case state == nil:
			fmt.Fprintf(out, "✗ Unreadable record %s: %v\n", key, err)
			rep.Corrupt = append(rep.Corrupt, key)
			continue
		}

		state.Clamp()
		fixed, err := json.Marshal(state)
		if err != nil {
			return rep, fmt.Errorf("failed to encode %s: %w", key, err)
		}
		if err := client.SetArgs(ctx, key, fixed, redis.SetArgs{KeepTTL: true}).Err(); err != nil {
			fmt.Fprintf(out, "Failed to rewrite %s: %v\n", key, err)
			continue
		}
		fmt.Fprintf(out, "✓ Clamped %s\n", key)
		rep.Clamped = append(rep.Clamped, key)
	}
	if err := iter.Err(); err != nil {
		return rep, fmt.Errorf("error during scan: %w", err)
	}

	fmt.Fprintf(out, "\nChecked %d keys, clamped %d, found %d unreadable\n",
		rep.Checked, len(rep.Clamped), len(rep.Corrupt))

	if len(rep.Corrupt) == 0 {
		return rep, nil
	}

	if !assumeYes {
		fmt.Fprint(out, "\nDo you want to DELETE the unreadable records? (yes/no): ")
		response, _ := bufio.NewReader(in).ReadString('\n') // nolint:errcheck // EOF means no
		if strings.TrimSpace(response) != "yes" {
			fmt.Fprintln(out, "Aborted - unreadable records kept")
			rep.Declined = true
			return rep, nil
		}
	}

	for _, key := range rep.Corrupt {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Fprintf(out, "Failed to delete %s: %v\n", key, err)
			continue
		}
		fmt.Fprintf(out, "Deleted %s\n", key)
		rep.Deleted++
	}
	return rep, nil
}
