package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/league --output domain/league --outpkg leaguemock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/team --output domain/team --outpkg teammock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/goal --output domain/goal --outpkg goalmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SoccerDataProvider --dir ../usecase --output usecase --outpkg usecasemock --filename soccer_data_provider_mock.go
