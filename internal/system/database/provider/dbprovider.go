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

package provider

import (
	"database/sql"
	"fmt"
	"os"
	"path"
	"sync"
	"time"

	"github.com/asgardeo/paymentauth/internal/system/config"
	"github.com/asgardeo/paymentauth/internal/system/database/model"
	"github.com/asgardeo/paymentauth/internal/system/log"
)

// RuntimeDB is the name of the datasource holding the runtime data such as telemetry events.
const RuntimeDB = "runtime"

// dbConfig represents the local database configuration.
type dbConfig struct {
	dsn        string
	driverName string
	// dataDir is the directory of a file based database. Created when missing.
	dataDir string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient(dbName string) (DBClientInterface, error)
	Close() error
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	runtimeClient DBClientInterface
	runtimeMutex  sync.RWMutex
}

var (
	instance *DBProvider
	once     sync.Once
)

// GetDBProvider returns the instance of DBProvider.
func GetDBProvider() DBProviderInterface {
	once.Do(func() {
		instance = &DBProvider{}
	})
	return instance
}

// GetDBClient returns a database client based on the provided database name.
// The client is created on first use and shared afterwards.
func (d *DBProvider) GetDBClient(dbName string) (DBClientInterface, error) {
	if dbName != RuntimeDB {
		return nil, fmt.Errorf("unsupported database name: %s", dbName)
	}

	d.runtimeMutex.RLock()
	if d.runtimeClient != nil {
		client := d.runtimeClient
		d.runtimeMutex.RUnlock()
		return client, nil
	}
	d.runtimeMutex.RUnlock()

	d.runtimeMutex.Lock()
	defer d.runtimeMutex.Unlock()
	if d.runtimeClient != nil {
		return d.runtimeClient, nil
	}

	runtime := config.GetRuntime()
	client, err := openClient(runtime.Home, runtime.Config.Database.Runtime)
	if err != nil {
		return nil, err
	}
	d.runtimeClient = client
	return client, nil
}

// Close closes the database connections opened by the provider.
func (d *DBProvider) Close() error {
	d.runtimeMutex.Lock()
	defer d.runtimeMutex.Unlock()

	if d.runtimeClient == nil {
		return nil
	}
	err := d.runtimeClient.Close()
	d.runtimeClient = nil
	if err != nil {
		return fmt.Errorf("failed to close %s client: %w", RuntimeDB, err)
	}
	log.GetLogger().Debug("Database connections closed successfully")
	return nil
}

// openClient opens and verifies a connection to the given data source.
func openClient(home string, dataSource config.DataSource) (DBClientInterface, error) {
	dbConfig, err := getDBConfig(home, dataSource)
	if err != nil {
		return nil, err
	}

	if dbConfig.dataDir != "" {
		if err := os.MkdirAll(dbConfig.dataDir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dbConfig.dataDir, err)
		}
	}

	db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", dataSource.Name, err)
	}

	db.SetMaxOpenConns(dataSource.MaxOpenConns)
	db.SetMaxIdleConns(dataSource.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(dataSource.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to ping database %s: %w (close error: %w)", dataSource.Name, err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database %s: %w", dataSource.Name, err)
	}

	return NewDBClient(model.NewDB(db), dbConfig.driverName), nil
}

// getDBConfig returns the driver and DSN for the provided data source.
func getDBConfig(home string, dataSource config.DataSource) (dbConfig, error) {
	switch dataSource.Type {
	case model.DBTypePostgres:
		return dbConfig{
			driverName: model.DBTypePostgres,
			dsn: fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
				dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
				dataSource.Name, dataSource.SSLMode),
		}, nil
	case model.DBTypeSQLite:
		options := dataSource.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		dbPath := dataSource.Path
		if !path.IsAbs(dbPath) {
			dbPath = path.Join(home, dbPath)
		}
		return dbConfig{
			driverName: model.DBTypeSQLite,
			dsn:        dbPath + options,
			dataDir:    path.Dir(dbPath),
		}, nil
	default:
		return dbConfig{}, fmt.Errorf("unsupported database type: %s", dataSource.Type)
	}
}
