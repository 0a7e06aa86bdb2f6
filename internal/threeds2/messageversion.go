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

package threeds2

// DefaultMessageVersion is the 3DS2 protocol version spoken when none is configured.
const DefaultMessageVersion = "2.1.0"

// MessageVersionRegistry tracks the protocol message version used for new sessions.
type MessageVersionRegistry struct {
	current string
}

// NewMessageVersionRegistry creates a registry for the given version, falling back to
// DefaultMessageVersion when it is empty.
func NewMessageVersionRegistry(current string) *MessageVersionRegistry {
	if current == "" {
		current = DefaultMessageVersion
	}
	return &MessageVersionRegistry{current: current}
}

// Current returns the message version used for new sessions.
func (r *MessageVersionRegistry) Current() string {
	if r == nil {
		return DefaultMessageVersion
	}
	return r.current
}
