// Copyright 2025 The reddit-cli Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging renders command results on stdout.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/vishwaraja/reddit-cli"
	"github.com/vishwaraja/reddit-cli/models"
)

const (
	headerMonitorReport = "Monitor report"
	headerExportReport  = "Export report"

	timeFormat = "2006-01-02 15:04:05"
)

// ReportMonitor prints the monitor report.
// if isJSON is true, it prints the report in JSON format, but logger must be passed
func ReportMonitor(stats *reddit.MonitorStats, isJSON bool, logger *slog.Logger) {
	if isJSON {
		logMonitorReport(stats, logger)
		return
	}

	printMonitorReport(stats)
}

func printMonitorReport(stats *reddit.MonitorStats) {
	fmt.Println(headerMonitorReport)
	fmt.Println(strings.Repeat("-", len(headerMonitorReport)))

	printMetric("Checks Done", stats.GetChecksDone())
	printMetric("New Comments", stats.GetNewComments())
	printMetric("Duration", stats.Duration)
}

func logMonitorReport(stats *reddit.MonitorStats, logger *slog.Logger) {
	logger.Info("monitor report",
		slog.Uint64("checks_done", uint64(stats.GetChecksDone())),
		slog.Uint64("new_comments", stats.GetNewComments()),
		slog.Duration("duration", stats.Duration),
	)
}

// ReportExport prints the export report.
// if isJSON is true, it prints the report in JSON format, but logger must be passed
func ReportExport(stats *reddit.ExportStats, outputFile string, isJSON bool, logger *slog.Logger) {
	if isJSON {
		logExportReport(stats, outputFile, logger)
		return
	}

	printExportReport(stats, outputFile)
}

func printExportReport(stats *reddit.ExportStats, outputFile string) {
	fmt.Println(headerExportReport)
	fmt.Println(strings.Repeat("-", len(headerExportReport)))

	printMetric("Records Written", stats.GetRecords())
	printMetric("Bytes Written", stats.GetBytesWritten())
	printMetric("Duration", stats.Duration)
	printMetric("Output File", outputFile)
}

func logExportReport(stats *reddit.ExportStats, outputFile string, logger *slog.Logger) {
	logger.Info("export report",
		slog.Uint64("records_written", stats.GetRecords()),
		slog.Uint64("bytes_written", stats.GetBytesWritten()),
		slog.Duration("duration", stats.Duration),
		slog.String("output_file", outputFile),
	)
}

// PrintFailure renders a terminally failed operation with a
// remediation hint matching its classification.
func PrintFailure(op string, err error, credentialsPath string) {
	fmt.Printf("Failed to %s: %v\n", op, err)

	termErr, ok := reddit.AsTerminalError(err)
	if !ok {
		return
	}

	switch termErr.Kind {
	case reddit.RateLimited:
		fmt.Println("The API is throttling requests. Wait a while before retrying.")
	case reddit.Unauthorized:
		fmt.Printf("The API rejected the credentials. Check %s.\n", credentialsPath)
	case reddit.ClientError:
		if apiErr, ok := reddit.AsAPIError(err); ok && apiErr.Message != "" {
			fmt.Printf("The API rejected the request: %s\n", apiErr.Message)
		}
	case reddit.Transient:
		fmt.Println("The API could not be reached. Check network connectivity.")
	}
}

// PrintPost renders one post in full.
func PrintPost(post *models.Post) {
	printMetric("Title", post.Title)
	printMetric("Author", "/u/"+post.Author)
	printMetric("Subreddit", "r/"+post.Subreddit)
	printMetric("Score", post.Score)
	printMetric("Comments", post.NumComments)
	printMetric("Created", post.Created.Time().Format(timeFormat))

	if post.LinkFlairText != "" {
		printMetric("Flair", post.LinkFlairText)
	}

	switch {
	case post.Permalink != "":
		printMetric("URL", permalinkURL(post.Permalink))
	case post.URL != "":
		printMetric("URL", post.URL)
	}

	if post.IsSelf && post.SelfText != "" {
		fmt.Println()
		fmt.Println(post.SelfText)
	}
}

// PrintPosts renders a post listing, one line each.
func PrintPosts(posts []models.Post) {
	if len(posts) == 0 {
		fmt.Println("No posts found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "SCORE\tCOMMENTS\tAUTHOR\tTITLE")

	for i := range posts {
		post := &posts[i]
		fmt.Fprintf(w, "%d\t%d\t/u/%s\t%s\n",
			post.Score, post.NumComments, post.Author, truncate(post.Title, 80))
	}

	_ = w.Flush()
}

// PrintComment renders one comment in full.
func PrintComment(comment *models.Comment) {
	printMetric("Author", "/u/"+comment.Author)
	printMetric("Score", comment.Score)
	printMetric("Created", comment.Created.Time().Format(timeFormat))

	if comment.Permalink != "" {
		printMetric("URL", permalinkURL(comment.Permalink))
	}

	fmt.Println()
	fmt.Println(comment.Body)
}

// PrintComments renders a comment listing as numbered blocks.
func PrintComments(comments []models.Comment) {
	if len(comments) == 0 {
		fmt.Println("No comments found.")
		return
	}

	for i := range comments {
		comment := &comments[i]

		fmt.Printf("%d. /u/%s (%d points, %s)\n",
			i+1, comment.Author, comment.Score, comment.Created.Time().Format(timeFormat))
		fmt.Printf("   %s\n", truncate(comment.Body, 200))

		if comment.Permalink != "" {
			fmt.Printf("   %s\n", permalinkURL(comment.Permalink))
		}

		fmt.Println()
	}
}

// PrintSubreddit renders one subreddit in full.
func PrintSubreddit(sub *models.Subreddit) {
	printMetric("Name", "r/"+sub.DisplayName)
	printMetric("Title", sub.Title)
	printMetric("Subscribers", sub.Subscribers)
	printMetric("Created", sub.Created.Time().Format(timeFormat))
	printMetric("Submissions", sub.SubmissionType)
	printMetric("NSFW", sub.Over18)

	if sub.PublicDescription != "" {
		fmt.Println()
		fmt.Println(sub.PublicDescription)
	}
}

// PrintSubreddits renders a subreddit listing, one line each.
func PrintSubreddits(subs []models.Subreddit) {
	if len(subs) == 0 {
		fmt.Println("No subreddits found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "SUBSCRIBERS\tNAME\tTITLE")

	for i := range subs {
		sub := &subs[i]
		fmt.Fprintf(w, "%d\tr/%s\t%s\n", sub.Subscribers, sub.DisplayName, truncate(sub.Title, 60))
	}

	_ = w.Flush()
}

// PrintAccount renders a user profile.
func PrintAccount(account *models.Account) {
	printMetric("Username", "/u/"+account.Name)
	printMetric("Link Karma", account.LinkKarma)
	printMetric("Comment Karma", account.CommentKarma)
	printMetric("Created", account.Created.Time().Format(timeFormat))
	printMetric("Gold", account.IsGold)
	printMetric("Moderator", account.IsMod)
}

// PrintFlairs renders the flair templates of a subreddit.
func PrintFlairs(flairs []models.FlairTemplate) {
	if len(flairs) == 0 {
		fmt.Println("No flairs available.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTEXT\tMOD ONLY")

	for i := range flairs {
		flair := &flairs[i]
		fmt.Fprintf(w, "%s\t%s\t%t\n", flair.ID, flair.Text, flair.ModOnly)
	}

	_ = w.Flush()
}

// PrintModerators renders the moderator roster of a subreddit.
func PrintModerators(mods []models.Moderator) {
	if len(mods) == 0 {
		fmt.Println("No moderators listed.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tPERMISSIONS\tSINCE")

	for i := range mods {
		mod := &mods[i]
		fmt.Fprintf(w, "/u/%s\t%s\t%s\n",
			mod.Name, strings.Join(mod.ModPermissions, ","), mod.Date.Time().Format(timeFormat))
	}

	_ = w.Flush()
}

// PrintFriends renders the friends list.
func PrintFriends(friends []models.Friend) {
	if len(friends) == 0 {
		fmt.Println("No friends yet.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tSINCE")

	for i := range friends {
		friend := &friends[i]
		fmt.Fprintf(w, "/u/%s\t%s\n", friend.Name, friend.Date.Time().Format(timeFormat))
	}

	_ = w.Flush()
}

// PrintMessages renders inbox messages as numbered blocks.
func PrintMessages(messages []models.Message) {
	if len(messages) == 0 {
		fmt.Println("No messages.")
		return
	}

	for i := range messages {
		msg := &messages[i]

		marker := ""
		if msg.New {
			marker = " [unread]"
		}

		kind := "message"
		if msg.WasComment {
			kind = "comment reply"
		}

		fmt.Printf("%d. %s from /u/%s%s (%s)\n",
			i+1, kind, msg.Author, marker, msg.Created.Time().Format(timeFormat))
		fmt.Printf("   Subject: %s\n", msg.Subject)
		fmt.Printf("   %s\n", truncate(msg.Body, 200))
		fmt.Println()
	}
}

func printMetric(key string, value any) {
	fmt.Printf("%s%v\n", indent(key), value)
}

func indent(key string) string {
	return fmt.Sprintf("%s:%s", key, strings.Repeat(" ", 21-len(key)))
}

func permalinkURL(permalink string) string {
	return "https://reddit.com" + permalink
}

// truncate shortens s to at most n runes, marking the cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n]) + "..."
}
