// Copyright (c) 2026 BAR HIK. All rights reserved.

// queries.go holds the fixed query documents sent to the WPGraphQL
// endpoint. Each mapper issues exactly one of these; none are built
// dynamically.
package cms

const queryAllPosts = `
query GetAllPosts {
  posts(first: 1000) {
    nodes {
      databaseId
      slug
      title
      date
      excerpt(format: RENDERED)
      author {
        node {
          name
        }
      }
      featuredImage {
        node {
          sourceUrl
          altText
        }
      }
      categories {
        nodes {
          name
          slug
        }
      }
      globalFields {
        card_excerpt
        experience_level
      }
    }
  }
}
`

const queryPostBySlug = `
query GetPostBySlug($slug: ID!) {
  post(id: $slug, idType: SLUG) {
    databaseId
    slug
    title
    date
    content(format: RENDERED)
    excerpt(format: RENDERED)
    author {
      node {
        name
      }
    }
    featuredImage {
      node {
        sourceUrl
        altText
      }
    }
    categories {
      nodes {
        name
        slug
      }
    }
    globalFields {
      aff_banner_url
      aff_banner_image {
        node {
          sourceUrl
        }
      }
      card_excerpt
      experience_level
    }
    revenueReviewFields {
      product_1_name
      product_1_image
      product_1_aff_link_url
      product_1_impression_tag
      product_1_redirect_slug
      product_1_catch_copy
      product_1_recommendRating
      product_2_name
      product_2_image
      product_2_aff_link_url
      product_2_impression_tag
      product_2_redirect_slug
      product_2_catch_copy
      product_2_recommend_rating
      product_3_name
      product_3_image
      product_3_aff_link_url
      product_3_impression_tag
      product_3_redirect_slug
      product_3_catch_copy
      product_3_recommend_rating
    }
    knowledgeMannersFields {
      proOnePoint
      alcohol_proof
      recipeIngredients
      originHistory
    }
  }
}
`

const queryAllPostSlugs = `
query GetAllPostSlugs {
  posts(first: 100) {
    nodes {
      slug
      date
    }
  }
}
`

const queryRecentPosts = `
query GetRecentPosts {
  posts(first: 5, where: {orderby: {field: DATE, order: DESC}}) {
    nodes {
      title
      slug
      date
      author {
        node {
          name
        }
      }
    }
  }
}
`

const queryAllCategories = `
query GetAllCategories {
  categories(where: {exclude: "1", hideEmpty: true}) {
    nodes {
      name
      slug
      count
    }
  }
}
`

const queryPostsByCategory = `
query GetPostsByCategory($slug: String!) {
  posts(first: 10, where: {categoryName: $slug}) {
    nodes {
      databaseId
      slug
      title
      date
      excerpt(format: RENDERED)
      author {
        node {
          name
        }
      }
      featuredImage {
        node {
          sourceUrl
          altText
        }
      }
      categories {
        nodes {
          name
          slug
        }
      }
      globalFields {
        card_excerpt
        experience_level
      }
    }
  }
}
`

const querySearchPosts = `
query SearchPosts($searchTerm: String!) {
  posts(where: { search: $searchTerm }, first: 10) {
    nodes {
      title
      slug
      date
      featuredImage {
        node {
          sourceUrl
        }
      }
    }
  }
}
`

const queryAllAffiliateLinks = `
query GetAllAffiliateLinks {
  posts(first: 100) {
    nodes {
      revenueReviewFields {
        product_1_redirect_slug
        product_1_aff_link_url
        product_2_redirect_slug
        product_2_aff_link_url
        product_3_redirect_slug
        product_3_aff_link_url
      }
    }
  }
}
`

const queryAllMenuItems = `
query AllMenuItems {
  foodItems(first: 100) {
    nodes {
      databaseId
      slug
      title
      content
      menuCategories {
        nodes {
          name
          slug
        }
      }
      menuFields {
        price
        isseasonal
        allergy
        isRecommended
        menuphoto {
          node {
            sourceUrl
            altText
          }
        }
      }
    }
  }
}
`

const queryMenuDetail = `
query GetMenuDetail($id: ID!) {
  foodItem(id: $id, idType: SLUG) {
    databaseId
    title
    content
    slug
    menuCategories {
      nodes {
        name
        slug
      }
    }
    menuFields {
      price
      isseasonal
      allergy
      isRecommended
      menuphoto {
        node {
          sourceUrl
          altText
        }
      }
    }
  }
}
`

const queryAllGalleryItems = `
query GetAllGalleryItems {
  photoGalleryItems(first: 100) {
    nodes {
      databaseId
      title
      galleryDetails {
        imageField {
          node {
            sourceUrl
            altText
          }
        }
      }
    }
  }
}
`
