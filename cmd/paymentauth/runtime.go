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
	"os"
	"path"

	"github.com/asgardeo/paymentauth/internal/system/config"
	"github.com/asgardeo/paymentauth/internal/system/constants"
	"github.com/asgardeo/paymentauth/internal/system/log"
)

const loggerComponentName = "PaymentAuthCLI"

type rootOptions struct {
	home string
}

// resolveHome returns the home directory from the flag, or the working directory.
func (o *rootOptions) resolveHome(logger *log.Logger) (string, error) {
	if o.home != "" {
		logger.Debug("Using home from command line argument", log.String("home", o.home))
		return o.home, nil
	}
	return os.Getwd()
}

// initRuntime loads the deployment configuration of the home directory and initializes the runtime.
func initRuntime(logger *log.Logger, home string) (*config.Config, error) {
	configFilePath := path.Join(home, constants.DefaultConfigFilePath)
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		return nil, err
	}

	if err := config.InitializeRuntime(home, cfg); err != nil {
		return nil, err
	}
	logger.Debug("Runtime initialized", log.String("config", configFilePath))
	return cfg, nil
}

func cliLogger() *log.Logger {
	return log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
}
