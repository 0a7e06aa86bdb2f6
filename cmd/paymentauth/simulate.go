/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package main

import (
	"context"
	"encoding/json"
	"path"

	"github.com/spf13/cobra"

	"github.com/asgardeo/paymentauth/internal/intent"
	"github.com/asgardeo/paymentauth/internal/paymentauth"
	"github.com/asgardeo/paymentauth/internal/relay"
	"github.com/asgardeo/paymentauth/internal/sandbox"
	"github.com/asgardeo/paymentauth/internal/system/config"
	"github.com/asgardeo/paymentauth/internal/system/constants"
	"github.com/asgardeo/paymentauth/internal/system/database/provider"
	"github.com/asgardeo/paymentauth/internal/system/log"
	"github.com/asgardeo/paymentauth/internal/telemetry"
)

const defaultPublishableKey = "pk_test_sandbox"

type simulateOptions struct {
	scenario       string
	scenarioFile   string
	publishableKey string
}

// simulationReport is printed for every simulated scenario.
type simulationReport struct {
	Scenario string `json:"scenario"`
	IntentID string `json:"intent_id,omitempty"`
	Status   string `json:"status,omitempty"`
	Outcome  string `json:"outcome,omitempty"`
	Error    string `json:"error,omitempty"`
}

func newSimulateCmd(root *rootOptions) *cobra.Command {
	opts := &simulateOptions{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run sandbox scenarios through the authentication orchestrator",
		Long: `Run scripted authentication attempts end to end against in-memory collaborators.
Each scenario prints one JSON report with the final intent status and outcome.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSimulate(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.scenario, "scenario", "s", "", "Run only the named scenario")
	cmd.Flags().StringVar(&opts.scenarioFile, "scenario-file", "",
		"Scenario file (default <home>/"+constants.DefaultScenarioFilePath+")")
	cmd.Flags().StringVar(&opts.publishableKey, "publishable-key", defaultPublishableKey,
		"Publishable key sent with every request")
	return cmd
}

func runSimulate(cmd *cobra.Command, root *rootOptions, opts *simulateOptions) error {
	logger := cliLogger()
	ctx := cmd.Context()

	home, err := root.resolveHome(logger)
	if err != nil {
		return err
	}
	cfg, err := initRuntime(logger, home)
	if err != nil {
		return err
	}

	scenarioFile := opts.scenarioFile
	if scenarioFile == "" {
		scenarioFile = path.Join(home, constants.DefaultScenarioFilePath)
	}
	scenarios, err := sandbox.LoadScenarios(scenarioFile)
	if err != nil {
		return err
	}
	if opts.scenario != "" {
		scenario, err := sandbox.FindScenario(scenarios, opts.scenario)
		if err != nil {
			return err
		}
		scenarios = []sandbox.Scenario{scenario}
	}

	dbProvider := provider.GetDBProvider()
	defer func() {
		if err := dbProvider.Close(); err != nil {
			logger.Error("Failed to close database provider", log.Error(err))
		}
	}()

	sink, err := telemetry.NewSinkFromConfig(ctx, cfg.PaymentAuth.Telemetry, dbProvider)
	if err != nil {
		return err
	}
	if closer, ok := sink.(interface{ Close() error }); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				logger.Error("Failed to close telemetry sink", log.Error(err))
			}
		}()
	}
	emitter := telemetry.NewEmitter(sink)
	defer emitter.Wait()

	encoder := json.NewEncoder(cmd.OutOrStdout())
	requestOpts := intent.RequestOptions{PublishableKey: opts.publishableKey}
	for _, scenario := range scenarios {
		report, err := simulateScenario(ctx, cfg.PaymentAuth, scenario, emitter, requestOpts)
		if err != nil {
			return err
		}
		if err := encoder.Encode(report); err != nil {
			return err
		}
	}
	return nil
}

func simulateScenario(ctx context.Context, cfg config.PaymentAuthConfig, scenario sandbox.Scenario,
	emitter telemetry.EmitterInterface, requestOpts intent.RequestOptions) (simulationReport, error) {
	env, err := sandbox.NewEnvironment(scenario)
	if err != nil {
		return simulationReport{}, err
	}

	orchestrator := paymentauth.NewOrchestratorFromConfig(cfg, env.Repository, env.Engine, env.Host, emitter)
	defer orchestrator.Close()

	result := <-orchestrator.ConfirmAndAuthenticate(ctx, scenario.ConfirmParams(), requestOpts)
	return newSimulationReport(scenario.Name, result), nil
}

func newSimulationReport(scenario string, result relay.Result) simulationReport {
	report := simulationReport{Scenario: scenario}
	if result.Err != nil {
		report.Error = result.Err.Error()
		return report
	}
	if result.Intent != nil {
		report.IntentID = result.Intent.ID
		report.Status = result.Intent.Status
	}
	report.Outcome = result.Outcome.String()
	return report
}
