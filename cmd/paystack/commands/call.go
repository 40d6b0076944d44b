package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/paystack/internal/constants"
	"github.com/fivetwenty-io/paystack/pkg/paystack"
)

// NewCallCommand creates the raw API call command.
func NewCallCommand() *cobra.Command {
	var (
		data    string
		queries []string
	)

	cmd := &cobra.Command{
		Use:   "call METHOD ENDPOINT",
		Short: "Call any API endpoint",
		Long: `Send a request to any endpoint and print the normalized response.

GET and DELETE send only --query parameters. POST, PUT and PATCH send only
the --data body. Keys are written in lowerCamelCase and converted for you.`,
		Example: `  paystack call GET /bank --query perPage=5 --query country=nigeria
  paystack call POST /transaction/initialize --data '{"email":"ada@example.com","amount":50000}'
  paystack call PUT /customer/CUS_123 --data @customer.json`,
		Args: cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			method := paystack.Method(strings.ToUpper(args[0]))
			if !method.Valid() {
				return fmt.Errorf("%w: %s", paystack.ErrUnsupportedMethod, args[0])
			}

			body, err := parseData(data)
			if err != nil {
				return err
			}

			query, err := parseQuery(queries)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Call(context.Background(), args[1], method, body, query)
			if err != nil {
				return err
			}

			return renderResponse(cmd, resp)
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON request body, or @file to read it from a file")
	cmd.Flags().StringArrayVarP(&queries, "query", "q", nil, "query parameter as key=value (repeatable)")

	return cmd
}

// parseData reads the --data flag. An empty flag means no body.
func parseData(data string) (interface{}, error) {
	if data == "" {
		return nil, nil
	}

	raw := []byte(data)

	if strings.HasPrefix(data, "@") {
		path := filepath.Clean(strings.TrimPrefix(data, "@"))
		if path == "." {
			return nil, constants.ErrInvalidDataFile
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read data file: %w", err)
		}

		raw = content
	}

	var body interface{}

	err := json.Unmarshal(raw, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse data as JSON: %w", err)
	}

	return body, nil
}

// parseQuery turns repeated key=value flags into a query object. A key given
// more than once becomes a list.
func parseQuery(queries []string) (map[string]interface{}, error) {
	if len(queries) == 0 {
		return nil, nil
	}

	query := make(map[string]interface{}, len(queries))

	for _, item := range queries {
		key, value, found := strings.Cut(item, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %s", constants.ErrInvalidQueryFormat, item)
		}

		switch existing := query[key].(type) {
		case nil:
			query[key] = value
		case string:
			query[key] = []string{existing, value}
		case []string:
			query[key] = append(existing, value)
		}
	}

	return query, nil
}
