package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Snapshots --dir ../domain/leaguestate --output domain/leaguestate --outpkg leaguestatemock --filename snapshots_mock.go
