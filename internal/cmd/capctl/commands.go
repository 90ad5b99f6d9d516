package capctl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	appsv0 "github.com/louisbranch/capbridge/api/apps/v0"
	"github.com/louisbranch/capbridge/bridge"
	"github.com/louisbranch/capbridge/client"
	"github.com/louisbranch/capbridge/gateway"
)

func (r *runner) toolCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tool",
		Short: "Describe or execute the plugin tool",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "describe",
		Short: "Print the tool name, description and input schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.call(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				tool := c.Tool()
				name, err := tool.Name(ctx, &appsv0.Empty{})
				if err != nil {
					return err
				}
				desc, err := tool.Description(ctx, &appsv0.Empty{})
				if err != nil {
					return err
				}
				schema, err := tool.Schema(ctx, &appsv0.Empty{})
				if err != nil {
					return err
				}
				approval, err := tool.RequiresApproval(ctx, &appsv0.Empty{})
				if err != nil {
					return err
				}
				r.printf("name: %s\ndescription: %s\nrequires approval: %t\nschema: %s\n",
					name.GetName(), desc.GetDescription(), approval.GetRequiresApproval(), schema.GetSchema())
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "exec [json]",
		Short: "Execute the tool with a JSON input object",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "{}"
			if len(args) == 1 {
				input = args[0]
			}
			if !json.Valid([]byte(input)) {
				return fmt.Errorf("input is not valid JSON: %s", input)
			}
			return r.call(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				resp, err := c.Tool().Execute(ctx, &appsv0.ExecuteRequest{Input: []byte(input)})
				if err != nil {
					return err
				}
				if resp.GetIsError() {
					return fmt.Errorf("tool error: %s", resp.GetContent())
				}
				r.printf("%s\n", resp.GetContent())
				return nil
			})
		},
	})
	return cmd
}

func (r *runner) scheduleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage plugin schedules",
	}

	var limit, offset int32
	var enabledOnly bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List schedules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.call(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				resp, err := c.Schedule().List(ctx, &appsv0.ListSchedulesRequest{
					Limit:       limit,
					Offset:      offset,
					EnabledOnly: enabledOnly,
				})
				if err != nil {
					return err
				}
				if msg := resp.GetError(); msg != "" {
					return errors.New(msg)
				}
				return writeSchedules(r.out, resp.GetSchedules(), resp.GetTotal())
			})
		},
	}
	list.Flags().Int32Var(&limit, "limit", 0, "maximum schedules to list (0 for all)")
	list.Flags().Int32Var(&offset, "offset", 0, "schedules to skip")
	list.Flags().BoolVar(&enabledOnly, "enabled-only", false, "list only enabled schedules")

	remove := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.call(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				resp, err := c.Schedule().Delete(ctx, &appsv0.DeleteScheduleRequest{Name: args[0]})
				if err != nil {
					return err
				}
				if !resp.GetSuccess() {
					return errors.New(resp.GetError())
				}
				r.printf("deleted %s\n", args[0])
				return nil
			})
		},
	}

	trigger := &cobra.Command{
		Use:   "trigger NAME",
		Short: "Fire a schedule now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.call(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				resp, err := c.Schedule().Trigger(ctx, &appsv0.ScheduleNameRequest{Name: args[0]})
				if err != nil {
					return err
				}
				if !resp.GetSuccess() {
					return errors.New(resp.GetError())
				}
				r.printf("%s\n", resp.GetOutput())
				return nil
			})
		},
	}

	cmd.AddCommand(list, remove, trigger)
	return cmd
}

func writeSchedules(out io.Writer, schedules []*appsv0.Schedule, total int64) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEXPRESSION\tTASK\tENABLED\tRUNS\tNEXT RUN")
	for _, s := range schedules {
		next := "-"
		if s.GetNextRun() != 0 {
			next = bridge.FromUnixMilli(s.GetNextRun()).Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%d\t%s\n",
			s.GetName(), s.GetExpression(), s.GetTaskType(), s.GetEnabled(), s.GetRunCount(), next)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%d of %d schedule(s)\n", len(schedules), total)
	return err
}

func (r *runner) channelCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channel",
		Short: "Interact with the plugin channel",
	}
	var connect []string
	listen := &cobra.Command{
		Use:   "listen",
		Short: "Print inbound messages until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := ParseSettings(connect)
			if err != nil {
				return err
			}
			c, err := r.dial(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			ch := c.Channel()
			if len(connect) > 0 {
				resp, err := ch.Connect(cmd.Context(), &appsv0.ChannelConnectRequest{Config: settings})
				if err != nil {
					return err
				}
				if msg := resp.GetError(); msg != "" {
					return fmt.Errorf("connect: %s", msg)
				}
			}
			stream, err := ch.Receive(cmd.Context(), &appsv0.Empty{})
			if err != nil {
				return err
			}
			for {
				env, err := stream.Recv()
				if err != nil {
					if errors.Is(err, io.EOF) || cmd.Context().Err() != nil {
						return nil
					}
					return err
				}
				r.printf("[%s] %s: %s\n", env.GetChannelId(), senderLabel(env.GetSender()), env.GetText())
			}
		},
	}
	listen.Flags().StringSliceVar(&connect, "connect", nil, "connect with key=value settings before listening")
	cmd.AddCommand(listen)
	return cmd
}

func senderLabel(s *appsv0.MessageSender) string {
	if name := strings.TrimSpace(s.GetName()); name != "" {
		return name
	}
	if id := s.GetId(); id != "" {
		return id
	}
	return "unknown"
}

func (r *runner) gatewayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gateway",
		Short: "Talk to the plugin model gateway",
	}
	var model, system string
	chat := &cobra.Command{
		Use:   "chat PROMPT",
		Short: "Stream a single-turn completion",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := r.dial(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			stream, err := c.Gateway().Stream(cmd.Context(), &appsv0.GatewayRequest{
				Model:    model,
				System:   system,
				Messages: []*appsv0.GatewayMessage{{Role: "user", Content: strings.Join(args, " ")}},
			})
			if err != nil {
				return err
			}
			return r.printEvents(stream)
		},
	}
	chat.Flags().StringVar(&model, "model", "", "model override")
	chat.Flags().StringVar(&system, "system", "", "system prompt")
	cmd.AddCommand(chat)
	return cmd
}

func (r *runner) printEvents(stream appsv0.GatewayService_StreamClient) error {
	for {
		ev, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch ev.GetType() {
		case gateway.EventText:
			r.printf("%s", ev.GetContent())
		case gateway.EventToolCall:
			r.printf("\n[tool call] %s\n", ev.GetContent())
		case gateway.EventError:
			return fmt.Errorf("gateway error: %s", ev.GetContent())
		case gateway.EventDone:
			r.printf("\n")
			return nil
		}
	}
}
