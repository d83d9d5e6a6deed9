// Package minio provides an ObjectStore implementation using the MinIO client.
//
// MinIO is an S3-compatible object storage system. The official MinIO Go
// client also talks to other S3-compatible services such as Ceph, Garage
// and Tencent COS.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	remote := minioblob.NewStore(client, "my-bucket", "state/")
//	db, err := slsdb.New[State]("/tmp/db.json", remote, State{})
//
// # Shortcut
//
// Dial builds the client from an endpoint and a static key pair:
//
//	remote, err := minioblob.Dial(minioblob.Config{
//	    Endpoint:  "cos.ap-guangzhou.myqcloud.com",
//	    Region:    "ap-guangzhou",
//	    AccessKey: secretID,
//	    SecretKey: secretKey,
//	    Bucket:    "examplebucket-1250000000",
//	    Secure:    true,
//	})
package minio
