package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/sociafeed/sociafeed-backend/server/resolver"
)

// NewSchema assembles the executable schema, binding every query and
// mutation field to its resolver method.
func NewSchema(r *resolver.Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getAllPosts": &graphql.Field{
				Type: graphql.NewList(postType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.GetAllPosts(p.Context)
				},
			},
			"getPostById": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := idArg(p.Args, "id")
					if err != nil {
						return nil, err
					}
					return r.GetPostById(p.Context, id)
				},
			},
			"getAllUser": &graphql.Field{
				Type: graphql.NewList(userType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.GetAllUser(p.Context)
				},
			},
			"getUserById": &graphql.Field{
				Type: userByIdType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := optionalIdArg(p.Args, "id")
					if err != nil {
						return nil, err
					}
					return r.GetUserById(p.Context, id)
				},
			},
			"getUserByNameOrUsername": &graphql.Field{
				Type: graphql.NewList(usersType),
				Args: graphql.FieldConfigArgument{
					"identifier": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					identifier, _ := p.Args["identifier"].(string)
					return r.GetUserByNameOrUsername(p.Context, identifier)
				},
			},
			"getAllFollows": &graphql.Field{
				Type: graphql.NewList(followType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.GetAllFollows(p.Context)
				},
			},
			"isFollowing": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"followingId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					followingId, err := idArg(p.Args, "followingId")
					if err != nil {
						return nil, err
					}
					return r.IsFollowing(p.Context, followingId)
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createPost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: createPostInputType},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.CreatePost(p.Context, decodeCreatePostInput(p.Args))
				},
			},
			"addComment": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: createCommentInputType},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input, err := decodeCreateCommentInput(p.Args)
					if err != nil {
						return nil, err
					}
					return r.AddComment(p.Context, input)
				},
			},
			"addLike": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"postId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					postId, err := idArg(p.Args, "postId")
					if err != nil {
						return nil, err
					}
					return r.AddLike(p.Context, postId)
				},
			},
			"removeLike": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"postId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					postId, err := idArg(p.Args, "postId")
					if err != nil {
						return nil, err
					}
					return r.RemoveLike(p.Context, postId)
				},
			},
			"createAccount": &graphql.Field{
				Type: messageType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: createUserInputType},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.CreateAccount(p.Context, decodeCreateUserInput(p.Args))
				},
			},
			"login": &graphql.Field{
				Type: loginType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: loginInputType},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Login(p.Context, decodeLoginInput(p.Args))
				},
			},
			"editUser": &graphql.Field{
				Type: messageType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: editUserInputType},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.EditUser(p.Context, decodeEditUserInput(p.Args))
				},
			},
			"createFollow": &graphql.Field{
				Type: messageType,
				Args: graphql.FieldConfigArgument{
					"followingId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					followingId, err := idArg(p.Args, "followingId")
					if err != nil {
						return nil, err
					}
					return r.CreateFollow(p.Context, followingId)
				},
			},
			"unFollow": &graphql.Field{
				Type: messageType,
				Args: graphql.FieldConfigArgument{
					"followingId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					followingId, err := idArg(p.Args, "followingId")
					if err != nil {
						return nil, err
					}
					return r.UnFollow(p.Context, followingId)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
