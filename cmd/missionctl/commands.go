package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"mission_control/viewer/client"
	"mission_control/viewer/config"
	"mission_control/viewer/handlers"
	"mission_control/viewer/models"

	"github.com/spf13/cobra"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "missionctl",
		Short:         "Query the mission-viewing API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "Mission API root URL")

	newClient := func() *client.Client {
		return client.NewClient(cfg.MissionViewingURL(),
			client.WithHTTPClient(&http.Client{Timeout: cfg.UpstreamTimeout}),
			client.WithServiceToken(cfg.GetJWTSecret(), cfg.ServiceName),
		)
	}

	root.AddCommand(newMissionsCmd(newClient), newRoutesCmd())
	return root
}

func newMissionsCmd(newClient func() *client.Client) *cobra.Command {
	missions := &cobra.Command{
		Use:   "missions",
		Short: "List and inspect missions",
	}

	var filter models.MissionFilter
	list := &cobra.Command{
		Use:   "list",
		Short: "List missions in server order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			producer := c.ListMissions()
			if len(filter.Query()) > 0 {
				producer = c.ListMissionsFiltered(filter)
			}
			out, err := producer.Await(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	list.Flags().StringVar(&filter.Name, "name", "", "Only missions whose name matches")
	list.Flags().StringVar(&filter.Status, "status", "", "Only missions with this status")
	list.Flags().IntVar(&filter.OwnedBy, "owned-by", 0, "Only missions led by this chief")
	list.Flags().IntVar(&filter.JoinedBy, "joined-by", 0, "Only missions joined by this brawler")
	list.Flags().IntVar(&filter.ExcludeOwnedBy, "exclude-owned-by", 0, "Skip missions led by this chief")
	list.Flags().IntVar(&filter.ExcludeJoinedBy, "exclude-joined-by", 0, "Skip missions joined by this brawler")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one mission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			out, err := newClient().GetMission(id).Await(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	crew := &cobra.Command{
		Use:   "crew <id>",
		Short: "List the crew of a mission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			out, err := newClient().GetMissionCrew(id).Await(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	missions.AddCommand(list, show, crew)
	return missions
}

func newRoutesCmd() *cobra.Command {
	routes := &cobra.Command{
		Use:   "routes",
		Short: "Inspect the viewer's page routes",
	}
	routes.AddCommand(&cobra.Command{
		Use:   "resolve <path>",
		Short: "Print the page a path is routed to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), handlers.Resolve(args[0]))
			return err
		},
	})
	return routes
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid mission id %q", raw)
	}
	return id, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
