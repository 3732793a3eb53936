package testlib

import (
	"context"
	"time"

	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/castel-site/src/shared/config"
	"github.com/veedubyou/castel-site/src/shared/config/dev"
	"github.com/veedubyou/castel-site/src/shared/lib/dynamo"
)

func DynamoConfig(region string) config.LocalDynamo {
	return config.LocalDynamo{
		AccessKeyID:     dev.DynamoAccessKeyID,
		SecretAccessKey: dev.DynamoSecretAccessKey,
		Region:          region,
		Host:            dev.DynamoDBHost,
	}
}

// MakeTestDB connects to the local DynamoDB, skipping the current spec
// when it isn't running. Each suite uses its own region to stay isolated
func MakeTestDB(testRegion string) dynamolib.DynamoDBWrapper {
	db := dynamolib.NewDynamoDB(DynamoConfig(testRegion))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := db.ListTables().AllWithContext(ctx); err != nil {
		ginkgo.Skip("local dynamodb is not running")
	}

	return db
}

func DeleteAllTables(db dynamolib.DynamoDBWrapper) {
	tableNames := ExpectSuccess(db.ListTables().All())

	for _, tableName := range tableNames {
		err := db.Table(tableName).DeleteTable().Run()
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
	}
}
